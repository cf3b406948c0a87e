package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Message: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
}

// /cart, /carts のHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// 必須判定のためポインタで受ける
type AddCartRequest struct {
	ProductID *int64   `json:"product_id"`
	Name      *string  `json:"name"`
	Price     *float64 `json:"price"`
	Quantity  *int64   `json:"quantity"`
}

// /cart（死活確認）と /carts を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cart", h.health)

	e.GET("/carts", h.getCart)
	e.GET("/carts/:id", h.getItem)
	e.POST("/carts", h.addToCart)
	e.DELETE("/carts/:id", h.deleteItem)
}

func (h *CartHandler) health(c echo.Context) error {
	return c.String(http.StatusOK, "Cart Service is running")
}

func (h *CartHandler) getCart(c echo.Context) error {
	out, err := h.uc.GetCart(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) getItem(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// 整数でないIDはどの明細にも一致しない
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "item not found"})
	}

	item, err := h.uc.GetItem(c.Request().Context(), itemID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	out, err := h.uc.AddToCart(c.Request().Context(), usecase.AddCartInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	// マージでも201（新規作成と区別しない）
	return c.JSON(http.StatusCreated, out)
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "item not found"})
	}

	out, err := h.uc.DeleteItem(c.Request().Context(), itemID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
