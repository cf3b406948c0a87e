package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /reviews のHTTP
type ReviewHandler struct {
	uc *usecase.ReviewUsecase
}

// DI
func NewReviewHandler(uc *usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// 必須判定のためポインタで受ける
type CreateReviewRequest struct {
	ProductID *int64   `json:"product_id"`
	Review    *string  `json:"review"`
	Rating    *float64 `json:"rating"`
}

// /reviews を登録
func (h *ReviewHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/reviews", h.list)
	e.GET("/reviews/:id", h.detail)
	e.GET("/reviews/product/:id", h.listByProduct)
	e.POST("/reviews", h.create)
}

func (h *ReviewHandler) list(c echo.Context) error {
	out, err := h.uc.ListReviews(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ReviewHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "review not found"})
	}

	out, err := h.uc.GetReview(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ReviewHandler) listByProduct(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "product not found"})
	}

	out, err := h.uc.ListReviewsByProduct(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ReviewHandler) create(c echo.Context) error {
	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid json data"})
	}

	out, err := h.uc.CreateReview(c.Request().Context(), usecase.CreateReviewInput{
		ProductID: req.ProductID,
		Review:    req.Review,
		Rating:    req.Rating,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
