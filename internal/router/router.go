package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"github.com/AnjalSotang/FYP-sub002/internal/handlers"
	"github.com/AnjalSotang/FYP-sub002/internal/middleware"
	"github.com/AnjalSotang/FYP-sub002/internal/models"
	"github.com/AnjalSotang/FYP-sub002/internal/notifications"
	"github.com/AnjalSotang/FYP-sub002/internal/repositories"
	"github.com/AnjalSotang/FYP-sub002/internal/scheduler"
	"github.com/AnjalSotang/FYP-sub002/internal/ws"
	"github.com/AnjalSotang/FYP-sub002/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes, wires up the notification
// pipeline and starts the background scheduler. The returned scheduler
// should be stopped on shutdown.
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client, fcmClient *messaging.Client) *scheduler.Scheduler {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Workout{},
		&models.WorkoutExercise{},
		&models.WorkoutSchedule{},
		&models.Measurement{},
		&models.Notification{},
		&models.DeviceToken{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	workoutRepo := repositories.NewPostgresWorkoutRepository(pgdb)
	exerciseRepo := repositories.NewMongoExerciseRepository(mgClient.Database(config.MongoDatabase))
	scheduleRepo := repositories.NewPostgresScheduleRepository(pgdb)
	measurementRepo := repositories.NewPostgresMeasurementRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	deviceTokenRepo := repositories.NewPostgresDeviceTokenRepository(pgdb)

	// --- Notification pipeline ---
	hub := ws.NewHub()
	notificationService := notifications.NewService(notificationRepo, deviceTokenRepo, hub, fcmClient)

	wsHandler := ws.NewHandler(hub)
	wsHandler.RegisterRoutes(e)
	log.Println("Notification websocket route configured.")

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, notificationService, firebaseAuthClient)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	admin := e.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	// Workout routes
	workoutHandler := handlers.NewWorkoutHandler(workoutRepo, userRepo, notificationService)
	workoutHandler.RegisterWorkoutRoutes(api, admin)
	log.Println("Workout routes configured.")

	// Exercise library routes
	exerciseHandler := handlers.NewExerciseHandler(exerciseRepo)
	exerciseHandler.RegisterExerciseRoutes(api, admin)
	log.Println("Exercise routes configured.")

	// Schedule routes
	scheduleHandler := handlers.NewScheduleHandler(scheduleRepo, workoutRepo, notificationService)
	scheduleHandler.RegisterScheduleRoutes(api)
	log.Println("Schedule routes configured.")

	// Measurement routes
	measurementHandler := handlers.NewMeasurementHandler(measurementRepo)
	measurementHandler.RegisterMeasurementRoutes(api)
	log.Println("Measurement routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationService, deviceTokenRepo)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	// Background jobs: workout reminders and daily stats
	sched := scheduler.NewScheduler(scheduleRepo, userRepo, notificationService)
	sched.Start()

	log.Println("All routes configured.")
	return sched
}
