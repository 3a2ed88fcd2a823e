package app

import (
	"log"

	"github.com/faaaroooqi/Feedstagram-app/internal/config"
	"github.com/faaaroooqi/Feedstagram-app/internal/database"
	"github.com/faaaroooqi/Feedstagram-app/internal/repository"
	"github.com/faaaroooqi/Feedstagram-app/internal/service"
	"github.com/faaaroooqi/Feedstagram-app/internal/storage"
)

// App wires the database, blob storage, repositories and services together.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
