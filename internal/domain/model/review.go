package model

type Review struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Review    string  `json:"review"`
	Rating    float64 `json:"rating"`
}
