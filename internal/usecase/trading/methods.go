package trading

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/manfrommother/spimex-api/internal/domain"
)

// LastTradingDates — проверяет кэш; при промахе читает последние торговые даты из хранилища
// и кладёт конверт ответа в кэш до ближайшего момента публикации.
func (u *UseCase) LastTradingDates(ctx context.Context, limit int) (*domain.DatesPage, error) {
	key := datesKey(limit)
	started := time.Now()

	var page domain.DatesPage
	if u.fromCache(ctx, key, &page) {
		u.publishEvent(ctx, "trading_dates", key, true, page.Total, started)
		return &page, nil
	}

	dates, err := u.repo.LastTradingDates(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("last trading dates: %w", err)
	}

	page = domain.DatesPage{Dates: dates, Total: len(dates)}
	u.toCache(ctx, key, &page)
	u.publishEvent(ctx, "trading_dates", key, false, page.Total, started)
	return &page, nil
}

// Dynamics — валидирует период, проверяет кэш; при промахе читает торги за период из
// хранилища. Валидация — до любого обращения к кэшу и хранилищу.
func (u *UseCase) Dynamics(ctx context.Context, start, end time.Time, filter domain.ResultFilter) (*domain.DynamicsPage, error) {
	if start.After(end) {
		return nil, domain.ErrInvalidPeriod
	}
	if end.Sub(start) > domain.MaxPeriodDays*24*time.Hour {
		return nil, domain.ErrPeriodTooLong
	}

	key := dynamicsKey(start, end, filter)
	started := time.Now()

	var page domain.DynamicsPage
	if u.fromCache(ctx, key, &page) {
		u.publishEvent(ctx, "dynamics", key, true, page.Total, started)
		return &page, nil
	}

	records, err := u.repo.Dynamics(ctx, start, end, filter)
	if err != nil {
		return nil, fmt.Errorf("dynamics: %w", err)
	}

	page = domain.DynamicsPage{Result: records, Total: len(records), StartDate: start, EndDate: end}
	u.toCache(ctx, key, &page)
	u.publishEvent(ctx, "dynamics", key, false, page.Total, started)
	return &page, nil
}

// TradingResults — проверяет кэш; при промахе читает последние результаты торгов.
func (u *UseCase) TradingResults(ctx context.Context, filter domain.ResultFilter, limit int) (*domain.ResultsPage, error) {
	key := resultsKey(filter, limit)
	started := time.Now()

	var page domain.ResultsPage
	if u.fromCache(ctx, key, &page) {
		u.publishEvent(ctx, "trading_results", key, true, page.Total, started)
		return &page, nil
	}

	records, err := u.repo.TradingResults(ctx, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("trading results: %w", err)
	}

	page = domain.ResultsPage{Result: records, Total: len(records)}
	u.toCache(ctx, key, &page)
	u.publishEvent(ctx, "trading_results", key, false, page.Total, started)
	return &page, nil
}

// InvalidateCache — административный полный сброс кэша.
func (u *UseCase) InvalidateCache(ctx context.Context) error {
	if err := u.cache.InvalidateAll(ctx); err != nil {
		return fmt.Errorf("invalidate cache: %w", err)
	}
	u.log.Info("cache invalidated")
	return nil
}

// HandleQueryEvent вызывается консьюмером при получении события из топика запросов.
func (u *UseCase) HandleQueryEvent(ctx context.Context, ev domain.QueryEvent) error {
	if u.analytics == nil {
		return nil
	}
	if err := u.analytics.WriteQuery(ctx, ev); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("query stored to click", "endpoint", ev.Endpoint, "cache_hit", ev.CacheHit, "total", ev.Total)
	return nil
}

// fromCache читает и декодирует конверт ответа из кэша. Транспортная ошибка и битое
// значение трактуются как промах: недоступный кэш не должен ронять читающий путь.
func (u *UseCase) fromCache(ctx context.Context, key string, dst any) bool {
	data, found, err := u.cache.Get(ctx, key)
	if err != nil {
		u.log.Warn("cache get", "key", key, "error", err)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		u.log.Warn("cache decode", "key", key, "error", err)
		return false
	}
	return true
}

// toCache сериализует и пишет конверт ответа в кэш. Запись — best effort: при ошибке
// логируем и отдаём результат клиенту без кэширования.
func (u *UseCase) toCache(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		u.log.Warn("cache encode", "key", key, "error", err)
		return
	}
	if err := u.cache.Set(ctx, key, data); err != nil {
		u.log.Warn("cache set", "key", key, "error", err)
		return
	}
	u.log.Info("response cached", "key", key)
}

// publishEvent отправляет событие обслуженного запроса в брокер (best effort).
func (u *UseCase) publishEvent(ctx context.Context, endpoint, key string, hit bool, total int, started time.Time) {
	if u.broker == nil {
		return
	}
	ev := domain.QueryEvent{
		Endpoint:   endpoint,
		CacheKey:   key,
		CacheHit:   hit,
		Total:      total,
		DurationMs: time.Since(started).Milliseconds(),
		CreatedAt:  time.Now(),
	}
	value, err := json.Marshal(ev)
	if err != nil {
		u.log.Warn("event encode", "key", key, "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(key), value); err != nil {
		u.log.Warn("broker send", "key", key, "error", err)
	}
}
