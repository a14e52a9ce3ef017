package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"github.com/manfrommother/spimex-api/internal/domain"
)

// IQueryAnalytics — запись событий запросов в хранилище для аналитики (например, ClickHouse).
type IQueryAnalytics interface {
	WriteQuery(ctx context.Context, ev domain.QueryEvent) error
}
