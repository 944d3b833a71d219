package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/tripkeeper/internal/client/cli"
	"github.com/iudanet/tripkeeper/internal/client/config"
	"github.com/iudanet/tripkeeper/internal/client/iocli"
	"github.com/iudanet/tripkeeper/internal/client/reconciler"
	"github.com/iudanet/tripkeeper/internal/client/remote"
	"github.com/iudanet/tripkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/tripkeeper/internal/client/weather"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to config file (default ~/.config/tripkeeper/config.toml)")
	serverURL := flag.String("server", "", "Sync endpoint URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(*configPath, *serverURL, *dbPath, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, serverURL, dbPath string, args []string) error {
	// Логи уходят в stderr и не смешиваются с выводом команд.
	// Уровень Warn: сетевые сбои видны, рутина синхронизации — нет.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	cfgPath := configPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Флаги перекрывают файл конфигурации и переменные окружения
	if serverURL != "" {
		cfg.Endpoint = serverURL
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	// Контекст завершается по Ctrl+C: команда watch живет до сигнала
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	store, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Канал обмена по выбранному транспорту
	var channel remote.Channel
	switch cfg.Transport {
	case config.TransportRedis:
		redisChannel := remote.NewRedisChannel(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Key)
		defer func() {
			if err := redisChannel.Close(); err != nil {
				slog.Error("failed to close redis channel", "error", err)
			}
		}()
		channel = redisChannel
	default:
		channel = remote.NewHTTPChannel(cfg.Endpoint, Version)
	}

	rec := reconciler.New(store, channel, time.Duration(cfg.DebounceSeconds)*time.Second, logger)
	defer rec.Close()

	// Прогноз погоды доступен только при настроенном API ключе
	var forecaster weather.Forecaster
	if cfg.Weather.APIKey != "" {
		forecaster = weather.NewHTTPForecaster(cfg.Weather.Endpoint, cfg.Weather.APIKey)
	}
	guard := weather.NewGuard(forecaster, store, logger)

	c := cli.New(iocli.NewStdio(), rec, guard, cfg, cfgPath, Version)

	if len(args) == 0 {
		c.PrintUsage()
		return fmt.Errorf("missing command")
	}

	return c.Run(ctx, args[0], args[1:])
}

func printVersion() {
	fmt.Printf("TripKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
