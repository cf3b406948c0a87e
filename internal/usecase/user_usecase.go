package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type UserUsecase struct {
	userRepo repo.UserRepository
}

// DI
func NewUserUsecase(userRepo repo.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// POST /usersの入力DTO
type CreateUserInput struct {
	Name  string
	Email string
	Role  string
}

func (u *UserUsecase) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return []model.User{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return users, nil
}

func (u *UserUsecase) GetUser(ctx context.Context, id int64) (model.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.User{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return user, nil
}

// CreateUser はname/email/role必須。
func (u *UserUsecase) CreateUser(ctx context.Context, in CreateUserInput) (model.User, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Role) == "" {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "missing fields. required fields: name, email, role")
	}

	user, err := u.userRepo.Create(ctx, model.User{
		Name:  in.Name,
		Email: in.Email,
		Role:  in.Role,
	})
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return user, nil
}
