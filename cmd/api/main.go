package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/harentsoaR/tutormatch-api/internal/config"
	"github.com/harentsoaR/tutormatch-api/internal/handlers"
	"github.com/harentsoaR/tutormatch-api/internal/logger"
	"github.com/harentsoaR/tutormatch-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)
	logger.Info("configuration loaded",
		"api_port", cfg.API.Port,
		"mongo_database", cfg.Mongo.Database,
		"cors_origins", cfg.CORS.AllowOrigins,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	client, err := store.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.ConnectTimeout)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", "error", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect from MongoDB", "error", err)
		}
	}()
	gw := store.NewMongo(client.Database(cfg.Mongo.Database), cfg.Mongo.QueryTimeout)
	logger.Info("connected to MongoDB", "database", cfg.Mongo.Database)

	if cfg.Mongo.EnsureIndexes {
		if err := gw.EnsureIndexes(ctx); err != nil {
			logger.Fatal("failed to create indexes", "error", err)
		}
	}

	// --- Router ---
	h := handlers.NewHandler(gw, logger)
	srv := &http.Server{
		Addr:    ":" + cfg.API.Port,
		Handler: handlers.NewRouter(h, cfg.CORS),
	}

	go func() {
		logger.Info("starting server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.API.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	logger.Info("server exited")
}
