package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import (
	"context"
	"time"
)

// ICache — контракт кэша ответов. Значение — сериализованный конверт ответа, кэшу оно непрозрачно.
// Срок жизни записи привязан к суточному моменту сброса (публикация итогов),
// а не к моменту записи; SetWithTTL позволяет задать срок явно.
// Транспортная ошибка из Get — недоступность кэша, а не логический промах.
type ICache interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
	InvalidateAll(ctx context.Context) error
	Ping(ctx context.Context) error
}
