package click

import (
	"context"
	"fmt"

	"github.com/manfrommother/spimex-api/internal/domain"
)

const queryAnalyticsFull = "default.query_analytics"

// QueryWriter записывает события обслуженных запросов в ClickHouse в формате, удобном
// для аналитики (hit rate по эндпоинтам, размеры выборок, латентность по времени).
type QueryWriter struct {
	db *Client
}

// NewQueryWriter создаёт писатель событий запросов.
func NewQueryWriter(db *Client) *QueryWriter {
	return &QueryWriter{db: db}
}

// EnsureTable создаёт таблицу событий в default, если её ещё нет. Вызови один раз при старте приложения.
func (w *QueryWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			endpoint    String,
			cache_key   String,
			cache_hit   UInt8,
			total       Int32,
			duration_ms Int64,
			created_at  DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, endpoint)
		PARTITION BY toYYYYMM(created_at)`,
		queryAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteQuery реализует ports.IQueryAnalytics: пишет одно событие запроса в ClickHouse.
func (w *QueryWriter) WriteQuery(ctx context.Context, ev domain.QueryEvent) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (endpoint, cache_key, cache_hit, total, duration_ms, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		queryAnalyticsFull,
	)
	var hit uint8
	if ev.CacheHit {
		hit = 1
	}
	_, err := w.db.DB().ExecContext(ctx, query,
		ev.Endpoint, ev.CacheKey, hit, int32(ev.Total), ev.DurationMs, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert query event: %w", err)
	}
	return nil
}
