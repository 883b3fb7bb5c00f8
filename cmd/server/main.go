package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/ShivamTripathi028/ibis-stock-sync/config"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/events"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/middleware"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/pkg/cache"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/pkg/logger"
	"github.com/ShivamTripathi028/ibis-stock-sync/internal/pkg/postgres"

	companyH "github.com/ShivamTripathi028/ibis-stock-sync/internal/company/handler"
	companyRepoPkg "github.com/ShivamTripathi028/ibis-stock-sync/internal/company/repository"
	companyUCPkg "github.com/ShivamTripathi028/ibis-stock-sync/internal/company/usecase"

	dashboardH "github.com/ShivamTripathi028/ibis-stock-sync/internal/dashboard/handler"
	dashboardUCPkg "github.com/ShivamTripathi028/ibis-stock-sync/internal/dashboard/usecase"

	orderH "github.com/ShivamTripathi028/ibis-stock-sync/internal/order/handler"
	orderRepoPkg "github.com/ShivamTripathi028/ibis-stock-sync/internal/order/repository"
	orderUCPkg "github.com/ShivamTripathi028/ibis-stock-sync/internal/order/usecase"

	shipmentH "github.com/ShivamTripathi028/ibis-stock-sync/internal/shipment/handler"
	shipmentRepoPkg "github.com/ShivamTripathi028/ibis-stock-sync/internal/shipment/repository"
	shipmentUCPkg "github.com/ShivamTripathi028/ibis-stock-sync/internal/shipment/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Redis (optional, dashboard counters cache)
	var redisClient *cache.RedisClient
	if cfg.Redis.Addr != "" {
		redisClient, err = cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Redis, dashboard cache disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// 5. Initialize RabbitMQ publisher (optional)
	var publisher *events.Publisher
	if cfg.Rabbit.URL != "" {
		conn, err := amqp091.Dial(cfg.Rabbit.URL)
		if err != nil {
			appLogger.Warn("Could not connect to RabbitMQ, event publishing disabled", zap.Error(err))
		} else {
			defer conn.Close()
			ch, err := conn.Channel()
			if err != nil {
				appLogger.Warn("Could not open RabbitMQ channel, event publishing disabled", zap.Error(err))
			} else {
				publisher, err = events.NewPublisher(ch, cfg.Rabbit.Exchange, appLogger)
				if err != nil {
					appLogger.Warn("Could not declare events exchange, event publishing disabled", zap.Error(err))
					publisher = nil
				} else {
					appLogger.Info("Connected to RabbitMQ", zap.String("exchange", cfg.Rabbit.Exchange))
				}
			}
		}
	}

	// 6. Initialize Repositories
	shipmentRepo := shipmentRepoPkg.NewPGRepository(db)
	orderRepo := orderRepoPkg.NewPGRepository(db)
	companyRepo := companyRepoPkg.NewPGRepository(db)

	// 7. Initialize UseCases
	shipmentUC := shipmentUCPkg.NewShipmentUseCase(shipmentRepo, orderRepo, publisher, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, shipmentRepo, companyRepo, publisher, appLogger)
	companyUC := companyUCPkg.NewCompanyUseCase(companyRepo, orderRepo, appLogger)
	dashboardUC := dashboardUCPkg.NewDashboardUseCase(shipmentRepo, orderRepo, redisClient, cfg.Redis.StatsTTL, appLogger)

	// 8. Initialize Handlers
	shipmentHandler := shipmentH.NewShipmentHandler(shipmentUC, appLogger)
	orderHandler := orderH.NewOrderHandler(orderUC, appLogger)
	companyHandler := companyH.NewCompanyHandler(companyUC, appLogger)
	dashboardHandler := dashboardH.NewDashboardHandler(dashboardUC, appLogger)

	// 9. Router
	if cfg.Server.AppEnv != "dev" && cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.Auth(cfg.JWT.SecretKey))

	api.GET("/dashboard/stats", dashboardHandler.Stats)

	api.POST("/shipments", shipmentHandler.Create)
	api.GET("/shipments", shipmentHandler.List)
	api.GET("/shipments/:id", shipmentHandler.Detail)
	api.PATCH("/shipments/:id/status", shipmentHandler.AdvanceStatus)
	api.POST("/shipments/:id/orders", orderHandler.Create)

	api.PATCH("/orders/:id", orderHandler.SetStatus)
	api.GET("/orders/company", orderHandler.ListCompanyOrders)
	api.GET("/orders/amazon", orderHandler.ListAmazonOrders)

	api.GET("/companies", companyHandler.List)
	api.POST("/companies", companyHandler.Create)
	api.PUT("/companies/:id", companyHandler.Update)
	api.DELETE("/companies/:id", companyHandler.Delete)

	// 10. Start HTTP server with graceful shutdown
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:              port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
