package repository

import (
	"context"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// メモリ版ユーザーリポジトリ（再起動で消える）
type UserMemoryRepository struct {
	mu    sync.Mutex
	users []model.User
}

// DI
// 初期データ付きで作る（デモ用）。
func NewUserMemoryRepository(seed []model.User) *UserMemoryRepository {
	users := make([]model.User, len(seed))
	copy(users, seed)
	return &UserMemoryRepository{users: users}
}

// ユーザー一覧
func (r *UserMemoryRepository) List(ctx context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// IDでユーザーを取得
func (r *UserMemoryRepository) FindByID(ctx context.Context, id int64) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, repo.ErrNotFound
}

// ユーザー作成（id=max+1）
func (r *UserMemoryRepository) Create(ctx context.Context, u model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64 = 0
	for _, x := range r.users {
		if x.ID > maxID {
			maxID = x.ID
		}
	}

	u.ID = maxID + 1
	r.users = append(r.users, u)
	return u, nil
}
