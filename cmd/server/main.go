package main

import (
	"context"
	"log"

	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"github.com/AnjalSotang/FYP-sub002/internal/router"
	"github.com/AnjalSotang/FYP-sub002/pkg/config"
	"github.com/AnjalSotang/FYP-sub002/pkg/firebase"
	"github.com/AnjalSotang/FYP-sub002/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Initialize Firebase. Optional: without credentials the app still runs,
	// just without Firebase login and device push.
	var authClient *auth.Client
	var fcmClient *messaging.Client
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		authClient = firebaseApp.AuthClient
		fcmClient = firebaseApp.MessagingClient
	} else {
		log.Println("Firebase credentials not configured, device push disabled.")
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	sched := router.SetupRoutes(e, db.Postgres, db.Mongo, authClient, fcmClient)
	defer sched.Stop()

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
