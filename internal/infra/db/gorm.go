package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect() (*gorm.DB, error) {
	// DATABASE_URL があれば最優先で使う
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	host := getenv("POSTGRES_HOST", "localhost")
	port := getenv("POSTGRES_PORT", "5432")
	user := getenv("POSTGRES_USER", "postgres")
	pass := getenv("POSTGRES_PASSWORD", "postgres")
	name := getenv("POSTGRES_DB", "app")
	ssl := getenv("POSTGRES_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, ssl,
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// ConnectWithRetry はDBが起動するまで接続を繰り返す。
// docker-compose起動時にDBの方が遅いことがあるため。
func ConnectWithRetry(retries int, interval time.Duration) (*gorm.DB, error) {
	for retries > 0 {
		gormDB, err := Connect()
		if err == nil {
			log.Println("database connected")
			return gormDB, nil
		}

		retries--
		log.Printf("db not ready, retrying... (%d)", retries)
		time.Sleep(interval)
	}

	return nil, fmt.Errorf("could not connect to database")
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
