package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/manfrommother/spimex-api/internal/domain"
)

// ITradingUseCase — контракт бизнес-логики торгов: запросы через кэш,
// административный сброс кэша и обработка событий запросов из Kafka.
type ITradingUseCase interface {
	LastTradingDates(ctx context.Context, limit int) (*domain.DatesPage, error)
	Dynamics(ctx context.Context, start, end time.Time, filter domain.ResultFilter) (*domain.DynamicsPage, error)
	TradingResults(ctx context.Context, filter domain.ResultFilter, limit int) (*domain.ResultsPage, error)
	InvalidateCache(ctx context.Context) error
	HandleQueryEvent(ctx context.Context, ev domain.QueryEvent) error
}
