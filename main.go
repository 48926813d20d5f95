package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/hanjalab/hanja-api/config"
	"github.com/hanjalab/hanja-api/handlers"
	"github.com/hanjalab/hanja-api/seed"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func newLogger(appEnv string) (*zap.SugaredLogger, error) {
	if appEnv == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			return nil, err
		}
		return logger.Sugar(), nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := newLogger(cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.Connect(cfg)
	if err != nil {
		logger.Fatalw("database connection failed", "error", err)
	}

	if err := seed.EnsureSchema(db, cfg.DatabaseSchema, logger); err != nil {
		logger.Fatalw("schema setup failed", "error", err)
	}
	if err := config.Migrate(db); err != nil {
		logger.Fatalw("migration failed", "error", err)
	}
	if err := seed.Run(db, logger); err != nil {
		logger.Fatalw("seed failed", "error", err)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		MaxAge:         86400,
	}).Handler(handlers.NewRouter(db))

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logger.Infow("listening", "addr", addr)
	if err := http.ListenAndServe(addr, corsHandler); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
