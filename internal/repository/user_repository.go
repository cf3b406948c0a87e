package repository

import (
	"context"

	"app/internal/domain/model"
)

type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)
}
