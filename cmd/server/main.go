package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/roomly-app/backend/internal/router"
	"github.com/roomly-app/backend/pkg/config"
	"github.com/roomly-app/backend/pkg/logger"
	"github.com/roomly-app/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	appLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLog.Sync()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		appLog.Fatal("Failed to initialize database", "error", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Mongo, cfg.MongoDatabase, appLog)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
