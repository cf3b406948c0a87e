package repository

import (
	"context"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// メモリ版レビューリポジトリ（再起動で消える）
type ReviewMemoryRepository struct {
	mu      sync.Mutex
	reviews []model.Review
}

// DI
func NewReviewMemoryRepository(seed []model.Review) *ReviewMemoryRepository {
	reviews := make([]model.Review, len(seed))
	copy(reviews, seed)
	return &ReviewMemoryRepository{reviews: reviews}
}

// レビュー一覧
func (r *ReviewMemoryRepository) List(ctx context.Context) ([]model.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}

// IDでレビューを取得
func (r *ReviewMemoryRepository) FindByID(ctx context.Context, id int64) (model.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rv := range r.reviews {
		if rv.ID == id {
			return rv, nil
		}
	}
	return model.Review{}, repo.ErrNotFound
}

// 商品IDでレビューを絞り込む（無ければ空リスト）
func (r *ReviewMemoryRepository) ListByProductID(ctx context.Context, productID int64) ([]model.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []model.Review{}
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			out = append(out, rv)
		}
	}
	return out, nil
}

// レビュー作成（id=max+1）
func (r *ReviewMemoryRepository) Create(ctx context.Context, rv model.Review) (model.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64 = 0
	for _, x := range r.reviews {
		if x.ID > maxID {
			maxID = x.ID
		}
	}

	rv.ID = maxID + 1
	r.reviews = append(r.reviews, rv)
	return rv, nil
}
