package main

import (
	"fmt"
	"net/http"
	"os"

	"financaspro/internal/config"
	"financaspro/internal/database"
	"financaspro/internal/handlers"
	"financaspro/internal/logger"
	"financaspro/internal/middleware"
	"financaspro/internal/services"
	"financaspro/internal/storage"
	"financaspro/internal/store"
	"financaspro/internal/validator"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "financaspro/internal/docs" // Import swagger docs
)

// @title           Finanças Pro API
// @version         1.0
// @description     Finanças Pro is a personal finance tracker that records income/expense transactions and recurring fixed bills, renders aggregate dashboards, and uses a generative AI service for financial tips and voice-to-transaction parsing.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize storage backend
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load storage configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.Migrate(&storage.Snapshot{}); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// The domain store is the single owner of both collections for the
	// lifetime of the process, initialized from persisted snapshots.
	gateway := storage.NewGormGateway(dbManager.DB())
	domainStore := store.New(gateway)

	// Remote AI client
	aiConfig := openai.DefaultConfig(appConfig.AIAPIKey)
	if appConfig.AIBaseURL != "" {
		aiConfig.BaseURL = appConfig.AIBaseURL
	}
	aiClient := openai.NewClientWithConfig(aiConfig)

	// Initialize services
	adviceService := services.NewAdviceService(aiClient, appConfig.AIModel)
	voiceService := services.NewVoiceService(aiClient, appConfig.AIModel, appConfig.AITranscribeModel)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(domainStore)
	fixedBillHandler := handlers.NewFixedBillHandler(domainStore)
	dashboardHandler := handlers.NewDashboardHandler(domainStore)
	categoryHandler := handlers.NewCategoryHandler()
	insightHandler := handlers.NewInsightHandler(domainStore, adviceService, voiceService)

	// Register custom binding validators
	validator.Register()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Fixed bill routes
	fixedBills := v1.Group("/fixed-bills")
	fixedBills.POST("", fixedBillHandler.CreateFixedBill)
	fixedBills.GET("", fixedBillHandler.GetFixedBills)
	fixedBills.POST("/:id/toggle", fixedBillHandler.ToggleFixedBill)
	fixedBills.DELETE("/:id", fixedBillHandler.DeleteFixedBill)

	// Dashboard and categories
	v1.GET("/dashboard", dashboardHandler.GetDashboard)
	v1.GET("/categories", categoryHandler.GetCategories)

	// AI-backed routes
	v1.GET("/insights/advice", insightHandler.GetAdvice)
	v1.POST("/voice/commands", insightHandler.CreateVoiceCommand)

	log.Infof("Starting Finanças Pro backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
