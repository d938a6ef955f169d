package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory/internal/inventory/config"
	"inventory/internal/inventory/handler"
	"inventory/internal/inventory/repository"
	"inventory/internal/inventory/router"
	"inventory/internal/inventory/service"
	"inventory/internal/inventory/util"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	// 0. Init Logger
	util.InitLogger()
	logger := util.GetLogger()

	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Init Storage
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var repo repository.ItemRepository
	var mongoClient *mongo.Client
	var sqlDB *sqlx.DB

	switch cfg.StorageDriver {
	case config.DriverMongo:
		mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			logger.Error("Failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		db := mongoClient.Database(cfg.DBName)
		repo = repository.NewMongoRepository(db, cfg.ItemsCollection)
	default:
		sqlDB, err = sqlx.Connect(cfg.StorageDriver, cfg.SQLDSN)
		if err != nil {
			logger.Error("Failed to connect to SQL database", "driver", cfg.StorageDriver, "error", err)
			os.Exit(1)
		}
		repo = repository.NewSQLRepository(sqlDB, cfg.StorageDriver)
	}

	// Ensure Indexes / Schema
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		logger.Warn("Failed to ensure indexes", "error", err)
	}

	// 3. Init Layers
	svc := service.NewService(repo)
	h := handler.NewItemHandler(svc)

	// 4. Init Echo & Routes
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	router.RegisterRoutes(e, h)

	// 5. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	if mongoClient != nil {
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Error("Failed to disconnect DB", "error", err)
		}
	}
	if sqlDB != nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Failed to close SQL database", "error", err)
		}
	}

	logger.Info("Server exited properly")
}
