// main.go
package main

import (
	"context"
	"log"

	"storage-rental/cmd"
	"storage-rental/internal/data/repository"
	"storage-rental/internal/gateway"
	"storage-rental/internal/wire"
	"storage-rental/pkg/cache"
	"storage-rental/pkg/database"
	"storage-rental/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to document store
	db, err := database.InitMongo(config.Mongo)
	if err != nil {
		logger.Fatal("Failed to connect to document store", zap.Error(err))
	}
	defer db.Close(context.Background())

	logger.Info("Document store connected successfully")

	// Connect to cache
	rdb, err := cache.InitRedis(config.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	logger.Info("Cache connected successfully")

	// Initialize repositories, gateway client and cache
	repos := repository.NewRepository(db, logger)
	gw := gateway.NewRazorpayGateway(config.Razorpay.KeyID, config.Razorpay.KeySecret, logger)
	facilityCache := cache.New(rdb, config.Redis.TTLSeconds, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, gw, facilityCache, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
