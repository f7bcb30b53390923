package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roomly-app/backend/internal/handlers"
	"github.com/roomly-app/backend/internal/repositories"
	"github.com/roomly-app/backend/internal/services"
	"github.com/roomly-app/backend/internal/store"
	"github.com/roomly-app/backend/pkg/logger"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes wires the store adapter, repositories, services and handlers
// and registers all application routes. Every dependency is constructed
// here and passed down explicitly; nothing holds process-wide state.
func SetupRoutes(e *echo.Echo, mgClient *mongo.Client, database string, log *logger.Logger) {
	st := store.NewMongoStore(mgClient.Database(database))
	SetupRoutesWithStore(e, st, log)
}

// SetupRoutesWithStore wires routes on an explicit store adapter. Tests use
// it with the in-memory store.
func SetupRoutesWithStore(e *echo.Echo, st store.Store, log *logger.Logger) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewUserRepository(st)
	roomRepo := repositories.NewRoomRepository(st)
	taskRepo := repositories.NewTaskRepository(st)
	notificationRepo := repositories.NewNotificationRepository(st)

	// --- Initialize Services ---
	userService := services.NewUserService(userRepo, roomRepo, log)
	roomService := services.NewRoomService(userRepo, roomRepo, log)
	taskService := services.NewTaskService(userRepo, roomRepo, taskRepo, userService, log)
	notificationService := services.NewNotificationService(userRepo, notificationRepo, userService, log)

	// User routes
	userHandler := handlers.NewUserHandler(userService, roomService, notificationService, log)
	userHandler.RegisterUserRoutes(e.Group("/user"))
	log.Info("User routes configured.")

	// Room routes
	roomHandler := handlers.NewRoomHandler(roomService, taskService, log)
	roomHandler.RegisterRoomRoutes(e.Group("/room"))
	log.Info("Room routes configured.")

	// Task routes
	taskHandler := handlers.NewTaskHandler(taskService, log)
	taskHandler.RegisterTaskRoutes(e.Group("/task"))
	log.Info("Task routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationService, log)
	notificationHandler.RegisterNotificationRoutes(e.Group("/notification"))
	log.Info("Notification routes configured.")

	log.Info("All routes configured.")
}
