// @title           Print Shop Backend API
// @version         1.0.0
// @description     Order intake and fulfillment tracker for a print shop. Customers submit a document with an MPesa payment reference; staff list orders, drive them through the lifecycle and download the original files.

// @contact.name   API Support
// @contact.email  support@example.com

// @host      localhost:8080
// @BasePath  /

package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/config"
	"printshop-backend/internal/database"
	"printshop-backend/internal/handlers"
	"printshop-backend/internal/middleware"
	"printshop-backend/internal/mpesa"
	"printshop-backend/internal/services"
	"printshop-backend/internal/storage"
	"printshop-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Run migrations before anything touches the schema.
	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		log.Fatalf("Migration failed: %v", err)
	}
	migrator.Close()
	log.Println("Migrations completed successfully")

	dbClient, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	var blobs storage.Store
	switch cfg.StorageBackend {
	case "supabase":
		blobs, err = storage.NewSupabase(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
		if err != nil {
			log.Fatalf("Failed to initialize supabase storage: %v", err)
		}
	default:
		blobs, err = storage.NewDisk(cfg.UploadDir)
		if err != nil {
			log.Fatalf("Failed to initialize disk storage: %v", err)
		}
	}

	verifier := mpesa.NewClient(cfg.MpesaAPIBaseURL, cfg.MpesaAPIKey)

	// Realtime events are optional; without Supabase the services skip them.
	var events services.EventPublisher
	if cfg.SupabaseURL != "" && cfg.SupabasePublishableKey != "" {
		supabaseClient, err := supabase.NewClient(cfg)
		if err != nil {
			log.Printf("Warning: failed to initialize supabase client, realtime events disabled: %v", err)
		} else {
			events = supabase.NewRealtimeClient(supabaseClient)
		}
	}

	uploadService := services.NewUploadService(verifier, blobs, dbClient, events)
	queryService := services.NewOrderQueryService(dbClient)
	statusService := services.NewStatusService(dbClient, events)
	downloadService := services.NewDownloadService(dbClient, blobs)

	uploadHandler := handlers.NewUploadHandler(uploadService)
	ordersHandler := handlers.NewOrdersHandler(queryService)
	statusHandler := handlers.NewStatusHandler(statusService)
	downloadHandler := handlers.NewDownloadHandler(downloadService)

	router := gin.Default()

	router.GET("/health", handlers.HealthHandler)

	// Customer submission is public.
	router.POST("/orders", uploadHandler.Submit)

	// Staff routes; auth is active only when STAFF_JWT_SECRET is set.
	staff := router.Group("/")
	staff.Use(middleware.StaffAuth(cfg.StaffJWTSecret))
	staff.GET("/orders", ordersHandler.ListOrders)
	staff.GET("/orders/:order_id", ordersHandler.GetOrder)
	staff.PATCH("/orders/:order_id/status", statusHandler.UpdateStatus)
	staff.GET("/orders/:order_id/download", downloadHandler.Download)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
