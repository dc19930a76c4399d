package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logitrack/internal/config"
	"logitrack/internal/handlers"
	"logitrack/internal/middleware"
	mongorepo "logitrack/internal/repositories/mongodb"
	"logitrack/internal/services"
	"logitrack/internal/utils"
	"logitrack/pkg/ai"
	"logitrack/pkg/cache"
	"logitrack/pkg/database"
	"logitrack/pkg/logger"
	"logitrack/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
		Colors: config.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// MongoDB
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer db.Close()

	if err := database.EnsureIndexes(db.Database); err != nil {
		appLogger.WithError(err).Fatal("Failed to ensure indexes")
	}

	// Redis cache is optional; the repositories take a nil cache service
	var cacheService services.CacheService
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			appLogger.WithError(err).Warn("Redis unavailable, caching disabled")
		} else {
			defer redisClient.Close()
			cacheService = services.NewCacheService(redisClient, appLogger, cfg.Redis.KeyPrefix, cfg.Redis.DefaultTTL)
		}
	}

	// Repositories
	vehicleRepo := mongorepo.NewVehicleRepository(db.Database, cacheService)
	deliveryRepo := mongorepo.NewDeliveryRepository(db.Database, cacheService)

	// Price suggester: external model when configured, deterministic
	// heuristic otherwise
	var suggester ai.PriceSuggester
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		suggester = ai.NewOpenAISuggester(cfg.AI.Endpoint, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Temperature, cfg.AI.Timeout)
	} else {
		suggester = ai.NewHeuristicSuggester(0)
	}

	// Services
	vehicleService := services.NewVehicleService(vehicleRepo, appLogger)
	deliveryService := services.NewDeliveryService(deliveryRepo, vehicleRepo, appLogger)
	reportService := services.NewReportService(deliveryService, appLogger)
	suggestionService := services.NewSuggestionService(suggester, appLogger)

	// Handlers
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryService, reportService, suggestionService)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(appLogger))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))

	v1 := router.Group("/api/v1")
	{
		routes.SetupVehicleRoutes(v1, vehicleHandler)
		routes.SetupDeliveryRoutes(v1, deliveryHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := db.Ping(); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		body := gin.H{
			"status":  status,
			"name":    utils.AppName,
			"version": utils.AppVersion,
		}
		if code == http.StatusOK {
			if vehicles, err := vehicleService.GetVehicleCount(c.Request.Context()); err == nil {
				body["vehicles"] = vehicles
			}
			if deliveries, err := deliveryService.GetDeliveryCount(c.Request.Context()); err == nil {
				body["deliveries"] = deliveries
			}
		}
		c.JSON(code, body)
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		appLogger.WithField("port", cfg.App.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Error("Forced shutdown")
	}
	appLogger.Info("Server stopped")
}
