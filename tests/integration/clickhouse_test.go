package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manfrommother/spimex-api/internal/domain"
	"github.com/manfrommother/spimex-api/internal/infrastructure/click"
	"github.com/manfrommother/spimex-api/tests/integration/testutil"
)

// clickContainer — контейнер ClickHouse, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var clickContainer *testutil.ClickHouseContainer

// setupClickHouse подключается к тестовому ClickHouse и создаёт таблицу аналитики.
func setupClickHouse(t *testing.T) (*click.Client, *click.QueryWriter) {
	t.Helper()

	ch, err := click.New(&click.Config{
		Host:     clickContainer.Host,
		Port:     clickContainer.Port,
		Database: clickContainer.Database,
		Username: clickContainer.User,
		Password: clickContainer.Password,
	})
	require.NoError(t, err, "не удалось подключиться к ClickHouse")

	writer := click.NewQueryWriter(ch)
	require.NoError(t, writer.EnsureTable(context.Background()), "не удалось создать таблицу аналитики")

	_, err = ch.DB().ExecContext(context.Background(), "TRUNCATE TABLE default.query_analytics")
	require.NoError(t, err)

	t.Cleanup(func() {
		ch.Close()
	})

	return ch, writer
}

func TestClickHouse_WriteQuery(t *testing.T) {
	if testing.Short() {
		t.Skip("интеграционный тест, пропуск в -short")
	}

	ch, writer := setupClickHouse(t)
	ctx := context.Background()

	ev := domain.QueryEvent{
		Endpoint:   "/api/trading/results",
		CacheKey:   "trading_results:-:-:-:100",
		CacheHit:   true,
		Total:      42,
		DurationMs: 3,
		CreatedAt:  time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, writer.WriteQuery(ctx, ev))

	var (
		endpoint string
		hit      uint8
		total    int32
	)
	row := ch.DB().QueryRowContext(ctx,
		"SELECT endpoint, cache_hit, total FROM default.query_analytics WHERE cache_key = ?",
		ev.CacheKey)
	require.NoError(t, row.Scan(&endpoint, &hit, &total))

	assert.Equal(t, "/api/trading/results", endpoint)
	assert.Equal(t, uint8(1), hit)
	assert.Equal(t, int32(42), total)
}

func TestClickHouse_EnsureTableIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("интеграционный тест, пропуск в -short")
	}

	_, writer := setupClickHouse(t)

	// Повторный вызов не должен падать.
	assert.NoError(t, writer.EnsureTable(context.Background()))
}
