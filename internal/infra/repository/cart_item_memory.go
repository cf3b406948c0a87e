package repository

import (
	"context"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// メモリ版カート明細リポジトリ（再起動で消える）
// 変更系はmuで直列化し、lost updateを防ぐ。
type CartItemMemoryRepository struct {
	mu    sync.Mutex
	items []model.CartItem
}

// DI
func NewCartItemMemoryRepository() *CartItemMemoryRepository {
	return &CartItemMemoryRepository{items: []model.CartItem{}}
}

// 明細を追加順で一覧取得
func (r *CartItemMemoryRepository) List(ctx context.Context) ([]model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.CartItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

// 明細を取得
func (r *CartItemMemoryRepository) FindByID(ctx context.Context, itemID int64) (model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.ID == itemID {
			return it, nil
		}
	}
	return model.CartItem{}, repo.ErrNotFound
}

// 同一商品は数量加算、無ければid=max+1で新規追加
func (r *CartItemMemoryRepository) UpsertByProduct(ctx context.Context, productID int64, name string, price float64, addQty int64) (model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 既存ありだったら数量を増やす（name/priceは初回の値を維持）
	for i := range r.items {
		if r.items[i].ProductID == productID {
			r.items[i].Quantity += addQty
			return r.items[i], nil
		}
	}

	//無い場合は新規作成
	var maxID int64 = 0
	for _, it := range r.items {
		if it.ID > maxID {
			maxID = it.ID
		}
	}

	newItem := model.CartItem{
		ID:        maxID + 1,
		ProductID: productID,
		Name:      name,
		Price:     price,
		Quantity:  addQty,
	}
	r.items = append(r.items, newItem)
	return newItem, nil
}

// 明細を削除
func (r *CartItemMemoryRepository) DeleteByID(ctx context.Context, itemID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == itemID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}
