package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/gustavoesucri/back-end-ifd/internal/config"
	"github.com/gustavoesucri/back-end-ifd/pkg/logger"
)

func main() {
	// .env is optional; production uses the real environment.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("production")
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Init(cfg.App.Environment)
	if envErr != nil {
		logger.Debug("No .env file found, using system environment variables", nil)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	Serve(cfg)
}
