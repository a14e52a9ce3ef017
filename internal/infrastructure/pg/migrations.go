package pg

import (
	"context"
)

const createTradingResultsTable = `
CREATE TABLE IF NOT EXISTS spimex_trading_results (
	id                SERIAL PRIMARY KEY,
	trading_date      TIMESTAMPTZ NOT NULL,
	oil_id            INTEGER NOT NULL,
	delivery_type_id  INTEGER NOT NULL,
	delivery_basis_id INTEGER NOT NULL,
	volume            DOUBLE PRECISION NOT NULL,
	price             DOUBLE PRECISION NOT NULL,
	total_value       DOUBLE PRECISION NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_trading_results_trading_date ON spimex_trading_results (trading_date);
CREATE INDEX IF NOT EXISTS idx_trading_results_oil_id ON spimex_trading_results (oil_id);
CREATE INDEX IF NOT EXISTS idx_trading_results_delivery_type_id ON spimex_trading_results (delivery_type_id);
CREATE INDEX IF NOT EXISTS idx_trading_results_delivery_basis_id ON spimex_trading_results (delivery_basis_id);
`

// Migrate создаёт таблицу итогов торгов и индексы, если их ещё нет.
// Наполнением таблицы занимается отдельный пайплайн загрузки, этот сервис её только читает.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createTradingResultsTable)
	return err
}
