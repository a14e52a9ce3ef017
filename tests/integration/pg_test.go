package integration

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manfrommother/spimex-api/internal/domain"
	"github.com/manfrommother/spimex-api/internal/infrastructure/pg"
	"github.com/manfrommother/spimex-api/tests/integration/testutil"
)

// pgContainer — контейнер PostgreSQL, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var pgContainer *testutil.PostgresContainer

// newTestLogger создаёт логгер для тестов.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// setupPgDB подключается к тестовой БД, применяет миграции и очищает таблицу торгов.
func setupPgDB(t *testing.T) *pg.DB {
	t.Helper()

	db, err := pg.New(&pg.Config{
		Host:     pgContainer.Host,
		Port:     pgContainer.Port,
		User:     pgContainer.User,
		Password: pgContainer.Password,
		DBName:   pgContainer.DBName,
		SSLMode:  "disable",
	})
	require.NoError(t, err, "не удалось создать pg.DB")

	require.NoError(t, pg.Migrate(context.Background(), db), "не удалось применить миграции")

	conn, err := sql.Open("postgres", pgContainer.DSN())
	require.NoError(t, err)
	_, err = conn.Exec("TRUNCATE TABLE spimex_trading_results RESTART IDENTITY")
	require.NoError(t, err, "не удалось очистить таблицу торгов")
	conn.Close()

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// seedRecord вставляет одну запись торгов с заданной датой и измерениями.
func seedRecord(t *testing.T, db *pg.DB, date time.Time, oilID, typeID, basisID int) {
	t.Helper()
	_, err := db.ExecContext(context.Background(), `
		INSERT INTO spimex_trading_results
			(trading_date, oil_id, delivery_type_id, delivery_basis_id, volume, price, total_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		date, oilID, typeID, basisID, 100.0, 50000.0, 5000000.0)
	require.NoError(t, err, "не удалось вставить запись торгов")
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPgRepo_LastTradingDates(t *testing.T) {
	if testing.Short() {
		t.Skip("интеграционный тест, пропуск в -short")
	}

	db := setupPgDB(t)
	repo := pg.NewTradingRepo(db, newTestLogger())
	ctx := context.Background()

	// Две записи за одну дату — дата в выдаче одна.
	seedRecord(t, db, day(2024, 1, 1), 1, 1, 1)
	seedRecord(t, db, day(2024, 1, 1), 2, 1, 1)
	seedRecord(t, db, day(2024, 1, 2), 1, 1, 1)
	seedRecord(t, db, day(2024, 1, 3), 1, 1, 1)

	dates, err := repo.LastTradingDates(ctx, 2)
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.True(t, dates[0].Equal(day(2024, 1, 3)), "самая свежая дата первая")
	assert.True(t, dates[1].Equal(day(2024, 1, 2)))

	all, err := repo.LastTradingDates(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 3, "дубликаты дат схлопываются")
}

func TestPgRepo_Dynamics_Window(t *testing.T) {
	if testing.Short() {
		t.Skip("интеграционный тест, пропуск в -short")
	}

	db := setupPgDB(t)
	repo := pg.NewTradingRepo(db, newTestLogger())
	ctx := context.Background()

	// Десять дней подряд, oil_id чередуется 1/2.
	for i := 0; i < 10; i++ {
		seedRecord(t, db, day(2024, 1, 1+i), 1+i%2, 1, 1)
	}

	start, end := day(2024, 1, 3), day(2024, 1, 7)
	records, err := repo.Dynamics(ctx, start, end, domain.ResultFilter{})
	require.NoError(t, err)
	require.Len(t, records, 5, "границы периода включительны")

	for i, rec := range records {
		assert.False(t, rec.TradingDate.Before(start), "запись не раньше начала периода")
		assert.False(t, rec.TradingDate.After(end), "запись не позже конца периода")
		if i > 0 {
			assert.False(t, rec.TradingDate.After(records[i-1].TradingDate), "порядок от новых к старым")
		}
	}
}

func TestPgRepo_Dynamics_Filters(t *testing.T) {
	if testing.Short() {
		t.Skip("интеграционный тест, пропуск в -short")
	}

	db := setupPgDB(t)
	repo := pg.NewTradingRepo(db, newTestLogger())
	ctx := context.Background()

	seedRecord(t, db, day(2024, 1, 1), 1, 1, 1)
	seedRecord(t, db, day(2024, 1, 2), 1, 2, 1)
	seedRecord(t, db, day(2024, 1, 3), 2, 1, 1)

	oil := 1
	records, err := repo.Dynamics(ctx, day(2024, 1, 1), day(2024, 1, 31), domain.ResultFilter{OilID: &oil})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// Фильтры объединяются по И.
	typeID := 1
	records, err = repo.Dynamics(ctx, day(2024, 1, 1), day(2024, 1, 31),
		domain.ResultFilter{OilID: &oil, DeliveryTypeID: &typeID})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].TradingDate.Equal(day(2024, 1, 1)))
}

func TestPgRepo_Dynamics_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("интеграционный тест, пропуск в -short")
	}

	db := setupPgDB(t)
	repo := pg.NewTradingRepo(db, newTestLogger())

	records, err := repo.Dynamics(context.Background(), day(2030, 1, 1), day(2030, 1, 31), domain.ResultFilter{})
	require.NoError(t, err)
	assert.Empty(t, records, "пустой период — пустой результат, не ошибка")
}

func TestPgRepo_TradingResults(t *testing.T) {
	if testing.Short() {
		t.Skip("интеграционный тест, пропуск в -short")
	}

	db := setupPgDB(t)
	repo := pg.NewTradingRepo(db, newTestLogger())
	ctx := context.Background()

	// Три записи за одну дату: при равной дате порядок по id от большего к меньшему.
	seedRecord(t, db, day(2024, 2, 1), 1, 1, 1)
	seedRecord(t, db, day(2024, 2, 1), 2, 1, 1)
	seedRecord(t, db, day(2024, 2, 1), 3, 1, 1)
	seedRecord(t, db, day(2024, 2, 2), 4, 1, 1)

	records, err := repo.TradingResults(ctx, domain.ResultFilter{}, 3)
	require.NoError(t, err)
	require.Len(t, records, 3, "limit ограничивает выдачу")
	assert.Equal(t, 4, records[0].OilID, "самая свежая дата первая")
	assert.Equal(t, 3, records[1].OilID, "при равной дате — больший id первым")
	assert.Equal(t, 2, records[2].OilID)

	basis := 1
	oil := 2
	records, err = repo.TradingResults(ctx, domain.ResultFilter{OilID: &oil, DeliveryBasisID: &basis}, 100)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].OilID)
}

func TestPgRepo_Ping(t *testing.T) {
	if testing.Short() {
		t.Skip("интеграционный тест, пропуск в -short")
	}

	db := setupPgDB(t)
	repo := pg.NewTradingRepo(db, newTestLogger())
	assert.NoError(t, repo.Ping(context.Background()))
}
