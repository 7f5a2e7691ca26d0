package main

import (
	"log"

	"github.com/aduportal/portal-go/internal/api/handlers"
	"github.com/aduportal/portal-go/internal/api/middleware"
	"github.com/aduportal/portal-go/internal/api/routes"
	"github.com/aduportal/portal-go/internal/application"
	"github.com/aduportal/portal-go/internal/chatbot"
	"github.com/aduportal/portal-go/internal/config"
	"github.com/aduportal/portal-go/internal/config/db"
	"github.com/aduportal/portal-go/internal/cron"
	"github.com/aduportal/portal-go/internal/domain/activity"
	"github.com/aduportal/portal-go/internal/domain/chat"
	"github.com/aduportal/portal-go/internal/domain/document"
	"github.com/aduportal/portal-go/internal/domain/profile"
	"github.com/aduportal/portal-go/internal/domain/request"
	"github.com/aduportal/portal-go/internal/repository"
	"github.com/aduportal/portal-go/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Register HTTP metrics
	middleware.InitMetrics()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&profile.Profile{},
		&request.Request{},
		&document.Document{},
		&chat.Message{},
		&activity.Log{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	store, err := storage.NewMinioStore()
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	repos := repository.NewRepositories(db.DB)
	assistant := chatbot.New(config.ChatbotURL)
	services := application.New(repos, store, assistant)
	h := handlers.NewHandlers(services)

	cron.StartAutoAssignTask(services.Triage, config.AutoAssignInterval)
	cron.StartCleanupTask(repos, config.ActivityRetentionDays)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())

	routes.RegisterRoutes(router, h)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
