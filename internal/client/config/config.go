package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Transport выбирает стратегию удаленного канала
const (
	TransportHTTP  = "http"
	TransportRedis = "redis"
)

const (
	defaultConfigPath      = "~/.config/tripkeeper/config.toml"
	defaultDBPath          = "~/.local/share/tripkeeper/tripkeeper.db"
	defaultEndpoint        = "http://localhost:8080"
	defaultDebounceSeconds = 2
	defaultRedisAddr       = "localhost:6379"
	defaultRedisKey        = "tripkeeper:trip"
	defaultWeatherEndpoint = "https://api.openweathermap.org/data/2.5/weather"
)

// Переменные окружения, перекрывающие файл конфигурации
const (
	envEndpoint      = "TRIPKEEPER_ENDPOINT"
	envWeatherAPIKey = "TRIPKEEPER_WEATHER_API_KEY"
)

// Config captures everything the client needs to run.
type Config struct {
	Transport       string // http или redis
	Endpoint        string // адрес tripkeeper-server (для http)
	DBPath          string // путь к локальной BoltDB базе
	DebounceSeconds int    // пауза между правкой и отправкой
	Redis           RedisConfig
	Weather         WeatherConfig
}

// RedisConfig настраивает redis-стратегию канала
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// WeatherConfig настраивает погодного провайдера
type WeatherConfig struct {
	Endpoint string
	APIKey   string
}

// fileConfig — дисковое представление конфигурации
type fileConfig struct {
	Transport       string `toml:"transport"`
	Endpoint        string `toml:"endpoint"`
	DBPath          string `toml:"db_path"`
	DebounceSeconds int    `toml:"debounce_seconds"`
	Redis           struct {
		Addr     string `toml:"addr"`
		Password string `toml:"password"`
		DB       int    `toml:"db"`
		Key      string `toml:"key"`
	} `toml:"redis"`
	Weather struct {
		Endpoint string `toml:"endpoint"`
		APIKey   string `toml:"api_key"`
	} `toml:"weather"`
}

// DefaultPath returns the resolved default config location
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

// Load locates and parses the client config, falling back to defaults
// when the file is missing. Переменные окружения применяются последними
// и перекрывают файл.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Файла нет — работаем на значениях по умолчанию
			applyEnv(&cfg)
			return cfg, validate(cfg)
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	merge(&cfg, raw)
	applyEnv(&cfg)

	return cfg, validate(cfg)
}

// Save writes the config to path, creating parent directories.
// Файл содержит API ключи, поэтому права 0600.
func Save(path string, cfg Config) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}

	var raw fileConfig
	raw.Transport = cfg.Transport
	raw.Endpoint = cfg.Endpoint
	raw.DBPath = cfg.DBPath
	raw.DebounceSeconds = cfg.DebounceSeconds
	raw.Redis.Addr = cfg.Redis.Addr
	raw.Redis.Password = cfg.Redis.Password
	raw.Redis.DB = cfg.Redis.DB
	raw.Redis.Key = cfg.Redis.Key
	raw.Weather.Endpoint = cfg.Weather.Endpoint
	raw.Weather.APIKey = cfg.Weather.APIKey

	data, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

func defaults() Config {
	return Config{
		Transport:       TransportHTTP,
		Endpoint:        defaultEndpoint,
		DBPath:          mustExpand(defaultDBPath),
		DebounceSeconds: defaultDebounceSeconds,
		Redis: RedisConfig{
			Addr: defaultRedisAddr,
			Key:  defaultRedisKey,
		},
		Weather: WeatherConfig{
			Endpoint: defaultWeatherEndpoint,
		},
	}
}

// merge накладывает непустые значения файла поверх значений по умолчанию
func merge(cfg *Config, raw fileConfig) {
	if v := strings.TrimSpace(raw.Transport); v != "" {
		cfg.Transport = v
	}
	if v := strings.TrimSpace(raw.Endpoint); v != "" {
		cfg.Endpoint = v
	}
	if v := strings.TrimSpace(raw.DBPath); v != "" {
		cfg.DBPath = mustExpand(v)
	}
	if raw.DebounceSeconds > 0 {
		cfg.DebounceSeconds = raw.DebounceSeconds
	}
	if v := strings.TrimSpace(raw.Redis.Addr); v != "" {
		cfg.Redis.Addr = v
	}
	if raw.Redis.Password != "" {
		cfg.Redis.Password = raw.Redis.Password
	}
	if raw.Redis.DB != 0 {
		cfg.Redis.DB = raw.Redis.DB
	}
	if v := strings.TrimSpace(raw.Redis.Key); v != "" {
		cfg.Redis.Key = v
	}
	if v := strings.TrimSpace(raw.Weather.Endpoint); v != "" {
		cfg.Weather.Endpoint = v
	}
	if v := strings.TrimSpace(raw.Weather.APIKey); v != "" {
		cfg.Weather.APIKey = v
	}
}

// applyEnv накладывает переменные окружения поверх файла
func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(envEndpoint)); v != "" {
		cfg.Endpoint = v
	}
	if v := strings.TrimSpace(os.Getenv(envWeatherAPIKey)); v != "" {
		cfg.Weather.APIKey = v
	}
}

func validate(cfg Config) error {
	switch cfg.Transport {
	case TransportHTTP, TransportRedis:
		return nil
	default:
		return fmt.Errorf("unknown transport %q: expected %q or %q", cfg.Transport, TransportHTTP, TransportRedis)
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
