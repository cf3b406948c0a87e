package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ReviewUsecase struct {
	reviewRepo repo.ReviewRepository
}

// DI
func NewReviewUsecase(reviewRepo repo.ReviewRepository) *ReviewUsecase {
	return &ReviewUsecase{reviewRepo: reviewRepo}
}

// POST /reviewsの入力DTO
// 必須判定のためポインタで受ける（nil=未指定）。
type CreateReviewInput struct {
	ProductID *int64
	Review    *string
	Rating    *float64
}

func (u *ReviewUsecase) ListReviews(ctx context.Context) ([]model.Review, error) {
	reviews, err := u.reviewRepo.List(ctx)
	if err != nil {
		return []model.Review{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return reviews, nil
}

func (u *ReviewUsecase) GetReview(ctx context.Context, id int64) (model.Review, error) {
	review, err := u.reviewRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "review not found")
	}
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return review, nil
}

// 商品に紐づくレビュー（無ければ空リスト）
func (u *ReviewUsecase) ListReviewsByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	reviews, err := u.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return []model.Review{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return reviews, nil
}

// CreateReview は欠けているフィールド名をメッセージで返す。
func (u *ReviewUsecase) CreateReview(ctx context.Context, in CreateReviewInput) (model.Review, error) {
	missing := []string{}
	if in.ProductID == nil {
		missing = append(missing, "product_id")
	}
	if in.Review == nil || strings.TrimSpace(*in.Review) == "" {
		missing = append(missing, "review")
	}
	if in.Rating == nil {
		missing = append(missing, "rating")
	}
	if len(missing) > 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, fmt.Sprintf("missing fields: %s", strings.Join(missing, ", ")))
	}

	review, err := u.reviewRepo.Create(ctx, model.Review{
		ProductID: *in.ProductID,
		Review:    *in.Review,
		Rating:    *in.Rating,
	})
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return review, nil
}
