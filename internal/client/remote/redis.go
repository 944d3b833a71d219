package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/iudanet/tripkeeper/internal/models"
	"github.com/iudanet/tripkeeper/pkg/api"
)

// RedisChannel представляет канал обмена через Redis.
// Документ хранится по ключу, изменения рассылаются через pub/sub —
// все подписанные установки видят правку почти мгновенно.
type RedisChannel struct {
	client  *redis.Client
	key     string
	channel string
}

// NewRedisChannel создает новый Redis канал.
// key — ключ документа; pub/sub канал получает суффикс ":updates".
func NewRedisChannel(addr, password string, db int, key string) *RedisChannel {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisChannel{
		client:  client,
		key:     key,
		channel: key + ":updates",
	}
}

// Close закрывает соединение с Redis
func (c *RedisChannel) Close() error {
	return c.client.Close()
}

// Send сохраняет документ по ключу и публикует его подписчикам
func (c *RedisChannel) Send(ctx context.Context, trip *models.TripDocument) error {
	data, err := json.Marshal(toWire(trip))
	if err != nil {
		return fmt.Errorf("failed to marshal trip document: %w", err)
	}

	if err := c.client.Set(ctx, c.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store document in redis: %w", err)
	}

	if err := c.client.Publish(ctx, c.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish document update: %w", err)
	}

	return nil
}

// Pull читает документ по ключу.
// Возвращает (nil, nil), если ключа нет или его содержимое не
// разобралось как документ с непустым id.
func (c *RedisChannel) Pull(ctx context.Context) (*models.TripDocument, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document from redis: %w", err)
	}

	var wire api.Trip
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, nil
	}
	if wire.ID == "" {
		return nil, nil
	}

	return fromWire(&wire), nil
}

// Subscribe подписывается на pub/sub канал обновлений.
// Перед живым потоком доставляется текущий снимок документа, чтобы
// свежеподключившаяся установка не ждала первой публикации. Подписка
// оформляется до снимка — обновление, пришедшее во время доставки
// снимка, не теряется, а упорядочивается правилами LWW на стороне
// получателя.
func (c *RedisChannel) Subscribe(ctx context.Context, onChange func(trip *models.TripDocument)) (func(), error) {
	sub := c.client.Subscribe(ctx, c.channel)

	// Дожидаемся подтверждения подписки от сервера
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	// Снимок текущего состояния
	if trip, err := c.Pull(ctx); err == nil && trip != nil {
		onChange(trip)
	}

	done := make(chan struct{})
	go func() {
		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var wire api.Trip
				if err := json.Unmarshal([]byte(msg.Payload), &wire); err != nil || wire.ID == "" {
					// Чужое или испорченное сообщение — пропускаем
					continue
				}
				onChange(fromWire(&wire))
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			close(done)
			_ = sub.Close()
		})
	}

	return unsubscribe, nil
}
