package main

import (
	"log"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
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

	//デモ用の初期レビュー
	reviewRepo := infraRepo.NewReviewMemoryRepository([]model.Review{
		{ID: 1, ProductID: 101, Review: "Handphone murah yang bagus.", Rating: 4.5},
		{ID: 2, ProductID: 101, Review: "Baterai awet.", Rating: 4.0},
		{ID: 3, ProductID: 102, Review: "Laptop cepat, recommended.", Rating: 5.0},
	})

	reviewUC := usecase.NewReviewUsecase(reviewRepo)
	reviewH := handler.NewReviewHandler(reviewUC)

	e := server.New(cfg.FEURL)
	reviewH.RegisterRoutes(e)

	log.Printf("review service starting on port %s", cfg.Port)
	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatal(err)
	}
}
