package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"

	"debt-projection/config"
	httpLayer "debt-projection/http"
	"debt-projection/repository"
	"debt-projection/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	log.SetLevel(parseLogLevel(cfg.LogLevel))
	log.Infof("Configuration validated successfully (storage=%s)", cfg.StorageBackend)

	store, closeStore, err := newBlobStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStore()

	loader := repository.NewSnapshotLoader(store, cfg.Blobs)
	analyzeService := service.NewAnalyzeService(loader)

	// Sin datos no se aceptan requests
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.LoadTimeout)
	err = analyzeService.Initialize(loadCtx)
	cancelLoad()
	if err != nil {
		log.Errorf("Failed to initialize service: %v", err)
		log.Fatal("Application will not start without data loaded")
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(
		httpLayer.NewAnalyzeHandler(analyzeService),
		httpLayer.NewHealthHandler(analyzeService),
		rateLimiter,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Errorf("Error starting server: %v", err)
		return
	case <-quit:
		log.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	log.Info("Server exited")
}

func newBlobStore(cfg *config.Config) (repository.BlobStore, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		store := repository.NewRedisBlobStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.ContainerName)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.LoadTimeout)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return repository.NewDirBlobStore(cfg.DataDir), func() {}, nil
	}
}

func parseLogLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
