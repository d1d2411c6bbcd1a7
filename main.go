package main

import (
	"log"

	"github.com/moneygate/tool-service/config"
	"github.com/moneygate/tool-service/database"
	"github.com/moneygate/tool-service/events"
	"github.com/moneygate/tool-service/handler"
	"github.com/moneygate/tool-service/metrics"
	"github.com/moneygate/tool-service/models"
	"github.com/moneygate/tool-service/repository"
	"github.com/moneygate/tool-service/router"
	"github.com/moneygate/tool-service/service"
	"github.com/moneygate/tool-service/storage"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func autoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(&models.GeneratedTool{}); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}

func main() {
	cfg := config.Load()
	logger := logrus.New()

	db := database.InitDB(cfg)
	autoMigrate(db)

	repo := repository.NewToolRepository(db)

	store, err := storage.NewMinIOStore(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to create artifact store: %v", err)
	}

	publisher := events.NewPublisher(cfg.Kafka, logger)
	defer publisher.Close()

	svc := service.NewToolService(repo, store, publisher, logger)
	toolHandler := handler.NewToolHandler(svc, logger)

	metrics.StartMetricsServer(cfg.HTTP.MetricsPort)

	r := router.Setup(toolHandler)
	log.Printf("Tool service listening on %s", cfg.HTTP.Port)
	if err := r.Run(":" + cfg.HTTP.Port); err != nil {
		log.Fatalf("serve error: %v", err)
	}
}
