package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// カート明細の永続化（保存・取得）だけを約束。
// 実装はメモリ版とファイル版の2つ（デプロイごとにどちらか一方）。
// 変更系は実装側で排他し、read-modify-writeを1つのクリティカルセクションにする。
type CartItemRepository interface {
	List(ctx context.Context) ([]model.CartItem, error)
	FindByID(ctx context.Context, itemID int64) (model.CartItem, error)
	// 同一商品は数量加算。新規はid=max+1（空なら1）で追加。
	// 既存行のname/priceは更新しない。更新後の行を返す。
	UpsertByProduct(ctx context.Context, productID int64, name string, price float64, addQty int64) (model.CartItem, error)
	DeleteByID(ctx context.Context, itemID int64) error
}
