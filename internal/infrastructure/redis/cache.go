package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/manfrommother/spimex-api/internal/ports"
)

var _ ports.ICache = (*Cache)(nil)

// Cache реализует ports.ICache через Redis. Ключ — канонический ключ логического запроса,
// значение — сериализованный конверт ответа. Срок жизни считает ResetClock;
// истечение пассивное, его обеспечивает сам Redis.
type Cache struct {
	cli   *Client
	reset ResetClock
	log   *slog.Logger
}

// NewCache возвращает кэш с суточным расписанием сброса.
func NewCache(cli *Client, reset ResetClock, log *slog.Logger) *Cache {
	return &Cache{cli: cli, reset: reset, log: log}
}

// Get возвращает значение по ключу. Если ключа нет — found == false.
// Любая другая ошибка — недоступность кэша, не промах.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.cli.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil { // ключа нет
			return nil, false, nil
		}
		c.log.Debug("cache get failed", "key", key, "error", err)
		return nil, false, err
	}
	return data, true, nil
}

// Set сохраняет значение до ближайшего момента сброса. Существующая запись
// перезаписывается атомарно (SETEX — одна команда).
func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	ttl, err := c.reset.TTL(time.Now())
	if err != nil {
		return fmt.Errorf("cache ttl: %w", err)
	}
	return c.SetWithTTL(ctx, key, value, ttl)
}

// SetWithTTL сохраняет значение с явно заданным сроком жизни.
func (c *Cache) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.cli.SetEx(ctx, key, value, ttl).Err(); err != nil {
		c.log.Debug("cache set failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Invalidate удаляет одну запись. Отсутствие ключа — не ошибка.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	if err := c.cli.Del(ctx, key).Err(); err != nil {
		c.log.Debug("cache invalidate failed", "key", key, "error", err)
		return err
	}
	return nil
}

// InvalidateAll удаляет все записи кэша (административный полный сброс). Идемпотентна.
func (c *Cache) InvalidateAll(ctx context.Context) error {
	if err := c.cli.FlushDB(ctx).Err(); err != nil {
		c.log.Debug("cache invalidate all failed", "error", err)
		return err
	}
	return nil
}

// Ping проверяет соединение с Redis (для readiness).
func (c *Cache) Ping(ctx context.Context) error {
	return c.cli.Ping(ctx)
}
