package model

// カートの明細
// 同一product_idは1行だけ（追加は数量加算で吸収する）。
// name/priceは追加時点の値を保持し、以後の追加では上書きしない。
type CartItem struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}
