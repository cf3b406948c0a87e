package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ファイル版カート明細リポジトリ（再起動しても残る）
// 毎回ファイル全体を読み書きする。read-modify-writeはmuで1つの
// クリティカルセクションにする。
// ファイルが無い・壊れている場合は空カート扱い（I/Oエラーはそのまま返す）。
type CartItemFileRepository struct {
	mu   sync.Mutex
	path string
}

// DI
func NewCartItemFileRepository(path string) *CartItemFileRepository {
	return &CartItemFileRepository{path: path}
}

// ファイルから全明細を読む（呼び出し側でmuを握ること）
func (r *CartItemFileRepository) load() ([]model.CartItem, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []model.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		// 壊れたファイルは空カート扱い（次の保存で上書きされる）
		return []model.CartItem{}, nil
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return items, nil
}

// 全明細をファイルへ書く（呼び出し側でmuを握ること）
func (r *CartItemFileRepository) save(items []model.CartItem) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(r.path, data, 0o644)
}

// 明細を追加順で一覧取得
func (r *CartItemFileRepository) List(ctx context.Context) ([]model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// 明細を取得
func (r *CartItemFileRepository) FindByID(ctx context.Context, itemID int64) (model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return model.CartItem{}, err
	}

	for _, it := range items {
		if it.ID == itemID {
			return it, nil
		}
	}
	return model.CartItem{}, repo.ErrNotFound
}

// 同一商品は数量加算、無ければid=max+1で新規追加
func (r *CartItemFileRepository) UpsertByProduct(ctx context.Context, productID int64, name string, price float64, addQty int64) (model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return model.CartItem{}, err
	}

	// 既存ありだったら数量を増やす（name/priceは初回の値を維持）
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += addQty

			if err := r.save(items); err != nil {
				return model.CartItem{}, err
			}
			return items[i], nil
		}
	}

	//無い場合は新規作成
	var maxID int64 = 0
	for _, it := range items {
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
	items = append(items, newItem)

	if err := r.save(items); err != nil {
		return model.CartItem{}, err
	}
	return newItem, nil
}

// 明細を削除
func (r *CartItemFileRepository) DeleteByID(ctx context.Context, itemID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}

	for i, it := range items {
		if it.ID == itemID {
			items = append(items[:i], items[i+1:]...)
			return r.save(items)
		}
	}
	return repo.ErrNotFound
}
