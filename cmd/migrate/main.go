package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/gustavoesucri/back-end-ifd/internal/config"
	"github.com/gustavoesucri/back-end-ifd/internal/infrastructure/database"
	"github.com/gustavoesucri/back-end-ifd/pkg/logger"
)

// migrate applies the embedded SQL migrations and exits.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("production")
		logger.Fatal("Failed to load configuration", err)
	}
	logger.Init(cfg.App.Environment)

	dbConfig, err := config.LoadDatabaseConfig(cfg.Database)
	if err != nil {
		logger.Fatal("Invalid database configuration", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db.Pool); err != nil {
		logger.Fatal("Migration failed", err)
	}
	logger.Info("Migrations applied", nil)
}
