package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campus-lostfound/config"
	_ "campus-lostfound/docs" // Swagger docs
	"campus-lostfound/internal/httpserver"
	"campus-lostfound/internal/storage/sqlite"
	"campus-lostfound/pkg/log"
	"campus-lostfound/pkg/token"
)

// @title       Campus Lost & Found API
// @description Lost and found item reports with automatic match discovery and statistics.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Campus Lost & Found...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer db.Close()

	if err := sqlite.EnsureSchema(db); err != nil {
		logger.Fatalf(ctx, "Failed to ensure schema: %v", err)
	}
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. Tokens
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Tokens:      tokens,
		RatePerMin:  cfg.RateLimit.PerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
