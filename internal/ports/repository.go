package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/manfrommother/spimex-api/internal/domain"
)

// ITradingRepository — контракт чтения итогов торгов. Хранилище только читается.
// Фильтры применяются конъюнктивно; пустая выборка — не ошибка.
// Порядок — trading_date по убыванию со стабильным tie-break внутри одной даты.
type ITradingRepository interface {
	LastTradingDates(ctx context.Context, limit int) ([]time.Time, error)
	Dynamics(ctx context.Context, start, end time.Time, filter domain.ResultFilter) ([]domain.TradingRecord, error)
	TradingResults(ctx context.Context, filter domain.ResultFilter, limit int) ([]domain.TradingRecord, error)
	Ping(ctx context.Context) error
}
