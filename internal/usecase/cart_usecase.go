package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// CartUsecase は /carts の業務ロジックです。
// カートは全体で1つ（ユーザー単位のスコープは持たない）。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
}

// DI
func NewCartUsecase(cartItemRepo repo.CartItemRepository) *CartUsecase {
	return &CartUsecase{cartItemRepo: cartItemRepo}
}

// CartResponse はGET /cartsの出力。
// totalは保存せず、一覧のたびに price×quantity の合計を計算し直す。
type CartResponse struct {
	Items []model.CartItem `json:"items"`
	Total float64          `json:"total"`
}

// POST /cartsの入力DTO
// 必須判定のためポインタで受ける（nil=未指定）。
type AddCartInput struct {
	ProductID *int64
	Name      *string
	Price     *float64
	Quantity  *int64
}

// POST /cartsの出力
type AddCartOutput struct {
	Message string         `json:"message"`
	Item    model.CartItem `json:"item"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// GetCart は全明細と合計を返す（空なら空リストとtotal=0）。
func (u *CartUsecase) GetCart(ctx context.Context) (CartResponse, error) {
	items, err := u.cartItemRepo.List(ctx)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	if items == nil {
		items = []model.CartItem{}
	}

	var total float64 = 0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}

	return CartResponse{Items: items, Total: total}, nil
}

// GetItem は明細1件を返す。
func (u *CartUsecase) GetItem(ctx context.Context, itemID int64) (model.CartItem, error) {
	item, err := u.cartItemRepo.FindByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return model.CartItem{}, NewHTTPError(http.StatusNotFound, "item not found")
	}
	if err != nil {
		return model.CartItem{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return item, nil
}

// AddToCart はカートに追加（同一商品は数量加算）。
// バリデーションは保存前にすべて済ませる（不正入力で部分適用しない）。
func (u *CartUsecase) AddToCart(ctx context.Context, in AddCartInput) (AddCartOutput, error) {
	if in.ProductID == nil || in.Name == nil || in.Price == nil {
		return AddCartOutput{}, NewHTTPError(http.StatusBadRequest, "product_id, name and price are required")
	}
	if strings.TrimSpace(*in.Name) == "" {
		return AddCartOutput{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if *in.Price < 0 {
		return AddCartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	// quantityは未指定・0以下なら1
	var qty int64 = 1
	if in.Quantity != nil && *in.Quantity > 0 {
		qty = *in.Quantity
	}

	// 同一商品は加算、無ければid=max+1で追加
	// 既存行のname/priceは最初に追加したときの値のまま
	item, err := u.cartItemRepo.UpsertByProduct(ctx, *in.ProductID, *in.Name, *in.Price, qty)
	if err != nil {
		return AddCartOutput{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	return AddCartOutput{
		Message: "item added to cart",
		Item:    item,
	}, nil
}

// DeleteItem は明細を削除する。
// 削除キーは明細ID（product_idではない）。
func (u *CartUsecase) DeleteItem(ctx context.Context, itemID int64) (MessageResponse, error) {
	err := u.cartItemRepo.DeleteByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return MessageResponse{}, NewHTTPError(http.StatusNotFound, "item not found")
	}
	if err != nil {
		return MessageResponse{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}

	return MessageResponse{Message: "item deleted successfully"}, nil
}
