package model

// ユーザーディレクトリの1件
// カートとは独立（相互参照しない）。
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
