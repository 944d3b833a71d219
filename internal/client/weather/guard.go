package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/tripkeeper/internal/client/storage"
	"github.com/iudanet/tripkeeper/internal/models"
)

const (
	// DefaultFreshWindow — возраст кэша, в пределах которого сеть не нужна
	DefaultFreshWindow = 30 * time.Minute

	// DefaultCooldown — длительность паузы circuit breaker после rate limit
	DefaultCooldown = 15 * time.Minute

	// defaultRetryDelay — пауза перед единственным повтором, удваивается
	defaultRetryDelay = time.Second

	cacheKeyPrefix = "weather:"
)

// Guard защищает квотированный погодный API от лишних вызовов.
// Свежий кэш отдается без сети; rate limit открывает circuit breaker
// на фиксированную паузу; при недоступности сети допускается устаревший
// кэш. Наружу ошибки не выходят вовсе: погода либо есть (возможно,
// устаревшая), либо ее нет.
type Guard struct {
	forecaster Forecaster
	cache      storage.CacheStorage
	logger     *slog.Logger

	// now и sleep выделены для подмены в тестах
	now   func() time.Time
	sleep func(d time.Duration)

	freshWindow time.Duration
	cooldown    time.Duration
	retryDelay  time.Duration

	mu            sync.Mutex
	cooldownUntil time.Time // нулевое значение — breaker закрыт
}

// NewGuard creates a new rate-limited fetch guard over the forecaster
func NewGuard(forecaster Forecaster, cache storage.CacheStorage, logger *slog.Logger) *Guard {
	return &Guard{
		forecaster:  forecaster,
		cache:       cache,
		logger:      logger,
		now:         time.Now,
		sleep:       time.Sleep,
		freshWindow: DefaultFreshWindow,
		cooldown:    DefaultCooldown,
		retryDelay:  defaultRetryDelay,
	}
}

// Fetch returns the weather for a city, or nil when no answer is available.
// Порядок принятия решения:
//  1. Открытый circuit breaker — сеть пропускается целиком, отдается
//     кэш любого возраста либо nil.
//  2. Свежий кэш — отдается без сетевого вызова.
//  3. Сетевой вызов: не более одного повтора, только на rate limit,
//     с удвоением паузы. Любой rate limit немедленно открывает breaker —
//     независимо от исхода повтора.
//  4. Успех перезаписывает кэш; окончательная неудача откатывается на
//     устаревший кэш, если он есть.
func (g *Guard) Fetch(ctx context.Context, city string) *Forecast {
	key := cacheKey(city)
	now := g.now()

	if g.breakerOpen(now) {
		g.logger.Debug("circuit breaker open, skipping network call", "city", city)
		return g.cached(ctx, key)
	}

	if entry, err := g.cache.GetCacheEntry(ctx, key); err == nil && entry.FreshWithin(g.freshWindow, now) {
		return decodeEntry(entry)
	}

	forecast, err := g.fetchWithRetry(ctx, city)
	if err != nil {
		g.logger.Warn("weather fetch failed, falling back to cache", "city", city, "error", err)
		return g.cached(ctx, key)
	}

	g.store(ctx, key, forecast)
	return forecast
}

// Available сообщает, сконфигурирован ли гард реальным провайдером
func (g *Guard) Available() bool {
	return g.forecaster != nil
}

// fetchWithRetry выполняет сетевой вызов с политикой повтора:
// максимум один повтор, только на ошибку класса rate limit
func (g *Guard) fetchWithRetry(ctx context.Context, city string) (*Forecast, error) {
	delay := g.retryDelay

	for attempt := 0; ; attempt++ {
		forecast, err := g.forecaster.Forecast(ctx, city)
		if err == nil {
			return forecast, nil
		}

		if !errors.Is(err, ErrRateLimited) {
			// Сетевые и прочие ошибки не повторяем — решит кэш
			return nil, err
		}

		// Rate limit открывает breaker сразу, до решения о повторе
		g.openBreaker()

		if attempt >= 1 {
			return nil, fmt.Errorf("retry exhausted: %w", err)
		}

		g.logger.Info("weather provider throttled, retrying once", "city", city, "delay", delay)
		g.sleep(delay)
		delay *= 2
	}
}

// cached возвращает кэшированную сводку любого возраста, либо nil
func (g *Guard) cached(ctx context.Context, key string) *Forecast {
	entry, err := g.cache.GetCacheEntry(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrCacheMiss) {
			g.logger.Warn("failed to read weather cache", "key", key, "error", err)
		}
		return nil
	}
	return decodeEntry(entry)
}

// store перезаписывает кэш свежим ответом
func (g *Guard) store(ctx context.Context, key string, forecast *Forecast) {
	data, err := json.Marshal(forecast)
	if err != nil {
		g.logger.Warn("failed to marshal forecast for cache", "key", key, "error", err)
		return
	}

	entry := &models.CacheEntry{
		Data:      data,
		Timestamp: forecast.RetrievedAt,
	}
	if err := g.cache.SaveCacheEntry(ctx, key, entry); err != nil {
		// Промах записи кэша не мешает отдать свежий ответ
		g.logger.Warn("failed to save weather cache", "key", key, "error", err)
	}
}

// breakerOpen проверяет, действует ли пауза circuit breaker
func (g *Guard) breakerOpen(now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return now.Before(g.cooldownUntil)
}

// openBreaker открывает circuit breaker на фиксированную паузу
func (g *Guard) openBreaker() {
	g.mu.Lock()
	defer g.mu.Unlock()

	until := g.now().Add(g.cooldown)
	if until.After(g.cooldownUntil) {
		g.cooldownUntil = until
		g.logger.Info("weather circuit breaker opened", "until", until)
	}
}

// decodeEntry разворачивает кэшированную сводку; Cached выставляется
// всегда, RetrievedAt берется из момента записи
func decodeEntry(entry *models.CacheEntry) *Forecast {
	var forecast Forecast
	if err := json.Unmarshal(entry.Data, &forecast); err != nil {
		return nil
	}
	forecast.Cached = true
	forecast.RetrievedAt = entry.Timestamp
	return &forecast
}

// cacheKey нормализует город в ключ кэша
func cacheKey(city string) string {
	return cacheKeyPrefix + strings.ToLower(strings.TrimSpace(city))
}
