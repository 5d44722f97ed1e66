package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "rentmarket-backend/internal/api/http"
	"rentmarket-backend/internal/config"
	"rentmarket-backend/internal/logger"
	"rentmarket-backend/internal/repository/postgres"
	"rentmarket-backend/internal/security"
	"rentmarket-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting rental marketplace backend", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	svcs := httpapi.Services{
		Items:    service.NewRentalItemService(store.RentalItemRepository, store.RentalTypeRepository, store.UserRepository),
		Requests: service.NewRentalRequestService(store.RentalRequestRepository, store.RentalItemRepository),
		Types:    service.NewRentalTypeService(store.RentalTypeRepository),
		Users:    service.NewUserService(store.UserRepository),
		Auth:     service.NewAuthService(store.UserRepository, tokenManager),
	}

	router := httpapi.NewRouter(svcs, tokenManager)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
