package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/tripkeeper/internal/server/handlers"
	"github.com/iudanet/tripkeeper/internal/server/middleware"
	"github.com/iudanet/tripkeeper/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "tripkeeper.db", "Path to SQLite database file")
	rps := flag.Float64("rate", 10, "Rate limit per client IP (requests per second)")
	burst := flag.Int("burst", 20, "Rate limit burst per client IP")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(*addr, *dbPath, *rps, *burst); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(addr, dbPath string, rps float64, burst int) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	tripHandler := handlers.NewTripHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/trip", tripHandler.HandleTrip)
	mux.HandleFunc("/api/v1/health", healthHandler.Health)

	limiter := middleware.NewRateLimiter(rps, burst, logger)
	defer limiter.Stop()

	// Цепочка: recovery -> logging (health не логируем) -> rate limit -> mux
	var handler http.Handler = mux
	handler = limiter.Middleware(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "addr", addr, "version", Version, "db", dbPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

func printVersion() {
	fmt.Printf("TripKeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
