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

	//デモ用の初期ユーザー
	userRepo := infraRepo.NewUserMemoryRepository([]model.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com", Role: "customer"},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Role: "seller"},
		{ID: 3, Name: "Charlie", Email: "charlie@example.com", Role: "admin"},
	})

	userUC := usecase.NewUserUsecase(userRepo)
	userH := handler.NewUserHandler(userUC)

	e := server.New(cfg.FEURL)
	userH.RegisterRoutes(e)

	log.Printf("user service starting on port %s", cfg.Port)
	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatal(err)
	}
}
