package main

import (
	"context"
	"log"

	"github.com/myhien-tailor/engagement/internal/database"
	router "github.com/myhien-tailor/engagement/internal/http"
	"github.com/myhien-tailor/engagement/internal/logger"
	"github.com/myhien-tailor/engagement/internal/services"
	"github.com/myhien-tailor/engagement/internal/storage"
	"github.com/myhien-tailor/engagement/internal/utils"
)

func main() {
	ctx := context.Background()
	config := NewConfig()

	if err := logger.Initialize(config.logLevel, config.env); err != nil {
		log.Fatalf("Logger wasn't initialized due to %s", err)
	}

	var (
		kv    storage.KeyValueStore
		users services.AuthStorage
	)

	if config.dsn == "" {
		log.Printf("WARNING: DATABASE_URI is empty, falling back to the in-memory store\n")
		memory := storage.NewMemory()
		kv, users = memory, memory
	} else {
		db, err := database.New(ctx, config.dsn)

		if err != nil {
			log.Fatalf("Database wasn't initialized due to %s", err)
		}

		if err := db.RunMigrations(); err != nil {
			log.Fatalf("Migrations weren't run due to %s", err)
		}

		kv, users = db, db
	}

	log.Printf("Running server on %s\n", config.endpoint)

	jobQueueService := services.NewJobQueueService(ctx, 100, 2)

	historyService := services.NewHistoryService(kv)
	loyaltyService := services.NewLoyaltyService(kv, historyService)
	referralService := services.NewReferralService(kv)
	measurementService := services.NewMeasurementService(kv)
	orderService := services.NewOrderService(kv, referralService, loyaltyService, measurementService, jobQueueService)

	utils.HandleTerminationProcess(func() {
		jobQueueService.Shutdown()
	})

	router.New(
		router.Config{Endpoint: config.endpoint},
		services.NewAuthService(users),
		services.NewJWTService(config.authSecretKey),
		orderService,
		historyService,
		loyaltyService,
		referralService,
		measurementService,
		services.NewRecommendationService(),
	).Run()
}
