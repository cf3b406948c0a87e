package repository

import (
	"context"

	"app/internal/domain/model"
)

type ReviewRepository interface {
	List(ctx context.Context) ([]model.Review, error)
	FindByID(ctx context.Context, id int64) (model.Review, error)
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
	Create(ctx context.Context, r model.Review) (model.Review, error)
}
