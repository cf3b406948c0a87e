package main

import (
	"log"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続（DBの起動が遅いことがあるのでリトライ）
	gormDB, err := db.ConnectWithRetry(30, 4*time.Second)
	if err != nil {
		log.Fatal(err)
	}

	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)

	//Handler生成
	productH := handler.NewProductHandler(productUC)

	//Server起動
	e := server.New(cfg.FEURL)
	productH.RegisterRoutes(e)

	log.Printf("product service starting on port %s", cfg.Port)
	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatal(err)
	}
}
