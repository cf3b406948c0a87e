package main

import (
	"log"

	"app/internal/config"
	"app/internal/handler"
	infraRepo "app/internal/infra/repository"
	repo "app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無くてもよい（環境変数直接指定も可）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//保存先はデプロイごとにどちらか一方
	var cartItemRepo repo.CartItemRepository
	switch cfg.CartStorage {
	case config.CartStorageFile:
		cartItemRepo = infraRepo.NewCartItemFileRepository(cfg.CartFile)
	default:
		cartItemRepo = infraRepo.NewCartItemMemoryRepository()
	}

	//Usecase生成
	cartUC := usecase.NewCartUsecase(cartItemRepo)

	//Handler生成
	cartH := handler.NewCartHandler(cartUC)

	//Server起動
	e := server.New(cfg.FEURL)
	cartH.RegisterRoutes(e)

	log.Printf("cart service starting on port %s (storage=%s)", cfg.Port, cfg.CartStorage)
	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatal(err)
	}
}
