package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/laminate-stock/docs"
	"github.com/tair/laminate-stock/internal/ledger"
	ledgerHTTP "github.com/tair/laminate-stock/internal/ledger/delivery/http"
	"github.com/tair/laminate-stock/internal/ledger/repository"
	"github.com/tair/laminate-stock/internal/user"
	userHTTP "github.com/tair/laminate-stock/internal/user/delivery/http"
	userrepo "github.com/tair/laminate-stock/internal/user/repository"
	"github.com/tair/laminate-stock/kafka"
	"github.com/tair/laminate-stock/pkg/database"
	"github.com/tair/laminate-stock/pkg/logger"
	"github.com/tair/laminate-stock/pkg/tracing"
)

// @title						Laminate Stock API
// @version					1.0
// @description				Inventory and stock flow tracking for laminate sheet distribution.
// @host						localhost:8080
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "laminate-stock")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting laminate stock service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "laminatedb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	laminateRepo := repository.NewGormLaminateRepository(db)
	if err := laminateRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate laminates table")
	}
	transactionRepo := repository.NewGormTransactionRepository(db)
	if err := transactionRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate transactions table")
	}
	userRepo := userrepo.NewGormUserRepository(db)
	if err := userRepo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to migrate users table")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Optional Kafka publisher
	var publisher *kafka.Publisher
	if getEnv("KAFKA_ENABLED", "false") == "true" {
		brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
		publisher, err = kafka.NewPublisher(brokers)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka publisher, continuing without events")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Initialize handlers with Wire DI
	userHandler := user.InitializeUserHandler(db)
	ledgerHandler := ledger.InitializeLedgerHandler(db, userRepo, publisher)

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	go startHTTPServer(userHandler, ledgerHandler, sqlDB, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(userHandler *userHTTP.UserHandler, ledgerHandler *ledgerHTTP.LedgerHandler, db *sql.DB, port string) {
	// Setup router
	router := mux.NewRouter()

	// Register all middlewares using middleware registration system
	middlewareConfig := ledgerHTTP.DefaultMiddlewareConfig()
	ledgerHTTP.RegisterMiddlewares(router, middlewareConfig)

	// Register routes
	userHandler.RegisterRoutes(router)
	ledgerHandler.RegisterRoutes(router)

	// Health check endpoint
	ledgerHandler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	ledgerHTTP.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// CORS middleware
	c := ledgerHTTP.SetupCORS(middlewareConfig)

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/index.html").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, c(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
