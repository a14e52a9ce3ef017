package pg

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/manfrommother/spimex-api/internal/domain"
	"github.com/manfrommother/spimex-api/internal/ports"
)

var _ ports.ITradingRepository = (*TradingRepo)(nil)

const recordColumns = "id, trading_date, oil_id, delivery_type_id, delivery_basis_id, volume, price, total_value, created_at, updated_at"

// TradingRepo реализует ports.ITradingRepository для PostgreSQL.
type TradingRepo struct {
	db  *DB
	log *slog.Logger
}

// NewTradingRepo возвращает репозиторий итогов торгов.
func NewTradingRepo(db *DB, log *slog.Logger) *TradingRepo {
	return &TradingRepo{db: db, log: log}
}

// LastTradingDates возвращает последние торговые даты без дубликатов, по убыванию, не больше limit.
func (r *TradingRepo) LastTradingDates(ctx context.Context, limit int) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT DISTINCT trading_date FROM spimex_trading_results ORDER BY trading_date DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("select trading dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan trading date: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// Dynamics возвращает записи с trading_date в [start, end] (границы включительно)
// с учётом фильтров, по убыванию даты.
func (r *TradingRepo) Dynamics(ctx context.Context, start, end time.Time, filter domain.ResultFilter) ([]domain.TradingRecord, error) {
	args := []any{start, end}
	conds := []string{"trading_date BETWEEN $1 AND $2"}
	args, conds = appendFilters(filter, args, conds)

	query := fmt.Sprintf(
		"SELECT %s FROM spimex_trading_results WHERE %s ORDER BY trading_date DESC, id DESC",
		recordColumns, strings.Join(conds, " AND "))

	return r.queryRecords(ctx, query, args...)
}

// TradingResults возвращает последние limit записей с учётом фильтров, по убыванию даты.
func (r *TradingRepo) TradingResults(ctx context.Context, filter domain.ResultFilter, limit int) ([]domain.TradingRecord, error) {
	var args []any
	var conds []string
	args, conds = appendFilters(filter, args, conds)

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit)

	query := fmt.Sprintf(
		"SELECT %s FROM spimex_trading_results %s ORDER BY trading_date DESC, id DESC LIMIT $%d",
		recordColumns, where, len(args))

	return r.queryRecords(ctx, query, args...)
}

// Ping проверяет доступность БД (readiness).
func (r *TradingRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// appendFilters добавляет условия-равенства по заданным фильтрам (AND-семантика).
func appendFilters(f domain.ResultFilter, args []any, conds []string) ([]any, []string) {
	if f.OilID != nil {
		args = append(args, *f.OilID)
		conds = append(conds, fmt.Sprintf("oil_id = $%d", len(args)))
	}
	if f.DeliveryTypeID != nil {
		args = append(args, *f.DeliveryTypeID)
		conds = append(conds, fmt.Sprintf("delivery_type_id = $%d", len(args)))
	}
	if f.DeliveryBasisID != nil {
		args = append(args, *f.DeliveryBasisID)
		conds = append(conds, fmt.Sprintf("delivery_basis_id = $%d", len(args)))
	}
	return args, conds
}

// queryRecords выполняет запрос и сканирует строки в доменные записи.
func (r *TradingRepo) queryRecords(ctx context.Context, query string, args ...any) ([]domain.TradingRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select trading results: %w", err)
	}
	defer rows.Close()

	var records []domain.TradingRecord
	for rows.Next() {
		var rec domain.TradingRecord
		if err := rows.Scan(
			&rec.ID, &rec.TradingDate, &rec.OilID, &rec.DeliveryTypeID, &rec.DeliveryBasisID,
			&rec.Volume, &rec.Price, &rec.TotalValue, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan trading result: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
