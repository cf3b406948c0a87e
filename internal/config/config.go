package config

import (
	"fmt"
	"os"
)

// カートの保存先
const (
	CartStorageMemory = "memory" // プロセスメモリ（再起動で消える）
	CartStorageFile   = "file"   // JSONファイル（再起動しても残る）
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート

	CartStorage string // カート保存先（memory / file）
	CartFile    string // file時のJSONパス

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		CartStorage: getenv("CART_STORAGE", CartStorageMemory),
		CartFile:    getenv("CART_FILE", "data/cart.json"),

		GoEnv: getenv("GO_ENV", "dev"),
		FEURL: os.Getenv("FE_URL"),
	}

	//保存先チェック（両方同時は無い）
	if cfg.CartStorage != CartStorageMemory && cfg.CartStorage != CartStorageFile {
		return Config{}, fmt.Errorf("CART_STORAGE must be %q or %q", CartStorageMemory, CartStorageFile)
	}
	if cfg.CartStorage == CartStorageFile && cfg.CartFile == "" {
		return Config{}, fmt.Errorf("CART_FILE is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
