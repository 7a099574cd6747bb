// @title Hackathon Judging API
// @version 1.0
// @description Evaluation scoring, ranking, and snapshot backend for the hackathon platform.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"hackathon_judging_backend/internal/app"
	"hackathon_judging_backend/internal/config"
	"hackathon_judging_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
