package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fastfeet/cmd"
	"fastfeet/internal/adapters/out/postgres/deliverymanrepo"
	"fastfeet/internal/adapters/out/postgres/filerepo"
	"fastfeet/internal/adapters/out/postgres/orderrepo"
	"fastfeet/internal/adapters/out/postgres/problemrepo"
	"fastfeet/internal/adapters/out/postgres/recipientrepo"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	echo "github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	if err := os.MkdirAll(configs.UploadDir, 0o755); err != nil {
		log.Fatalf("Error creating upload directory %s: %v", configs.UploadDir, err)
	}

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.Static("/files", configs.UploadDir)
	app.CreateServer().RegisterRoutes(e)

	go func() {
		if serveErr := e.Start("0.0.0.0:" + configs.HTTPPort); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("HTTP server stopped", "error", serveErr)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err = e.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}

	jobManager.StopAll()
	app.Queue().Close()
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		slog.Warn("No .env file loaded", "error", err)
	}

	config := cmd.Config{}
	pflag.StringVar(&config.HTTPPort, "http-port", envOr("HTTP_PORT", "8080"), "HTTP listen port")
	pflag.StringVar(&config.DBHost, "db-host", envOr("DB_HOST", "localhost"), "database host")
	pflag.StringVar(&config.DBPort, "db-port", envOr("DB_PORT", "5432"), "database port")
	pflag.StringVar(&config.DBUser, "db-user", envOr("DB_USER", "postgres"), "database user")
	pflag.StringVar(&config.DBPassword, "db-password", envOr("DB_PASSWORD", "postgres"), "database password")
	pflag.StringVar(&config.DBName, "db-name", envOr("DB_NAME", "fastfeet"), "database name")
	pflag.StringVar(&config.DBSslMode, "db-sslmode", envOr("DB_SSLMODE", "disable"), "database ssl mode")
	pflag.StringVar(&config.UploadDir, "upload-dir", envOr("UPLOAD_DIR", "uploads"), "directory for uploaded files")
	pflag.StringVar(&config.BaseURL, "base-url", envOr("BASE_URL", "http://localhost:8080"), "public base URL for file links")
	pflag.Parse()

	return config
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = gormDB.AutoMigrate(
		&recipientrepo.RecipientDTO{},
		&deliverymanrepo.DeliveryManDTO{},
		&filerepo.FileDTO{},
		&orderrepo.OrderDTO{},
		&problemrepo.DeliveryProblemDTO{},
	); err != nil {
		return nil, err
	}

	return gormDB, nil
}
