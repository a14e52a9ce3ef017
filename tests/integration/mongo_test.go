package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/manfrommother/spimex-api/internal/domain"
	"github.com/manfrommother/spimex-api/internal/infrastructure/mongo"
	"github.com/manfrommother/spimex-api/tests/integration/testutil"
)

// mongoContainer — контейнер MongoDB, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var mongoContainer *testutil.MongoContainer

// setupMongo подключается к тестовой MongoDB и очищает коллекцию торгов.
func setupMongo(t *testing.T) *mongo.Client {
	t.Helper()

	ctx := context.Background()
	client, err := mongo.New(ctx, &mongo.Config{
		URI:        mongoContainer.URI(),
		Database:   "spimex_test",
		Collection: "trading_results",
	})
	require.NoError(t, err, "не удалось подключиться к MongoDB")

	_, err = client.Coll().DeleteMany(ctx, bson.M{})
	require.NoError(t, err, "не удалось очистить коллекцию")

	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	return client
}

// seedMongoRecord вставляет один документ торгов.
func seedMongoRecord(t *testing.T, client *mongo.Client, id int64, date time.Time, oilID int) {
	t.Helper()
	now := time.Now().UTC()
	_, err := client.Coll().InsertOne(context.Background(), bson.M{
		"id":                id,
		"trading_date":      date,
		"oil_id":            oilID,
		"delivery_type_id":  1,
		"delivery_basis_id": 1,
		"volume":            100.0,
		"price":             50000.0,
		"total_value":       5000000.0,
		"created_at":        now,
		"updated_at":        now,
	})
	require.NoError(t, err, "не удалось вставить документ")
}

func TestMongoRepo_LastTradingDates(t *testing.T) {
	if testing.Short() {
		t.Skip("интеграционный тест, пропуск в -short")
	}

	client := setupMongo(t)
	repo := mongo.NewTradingRepo(client, newTestLogger())
	ctx := context.Background()

	seedMongoRecord(t, client, 1, day(2024, 1, 1), 1)
	seedMongoRecord(t, client, 2, day(2024, 1, 1), 2)
	seedMongoRecord(t, client, 3, day(2024, 1, 2), 1)
	seedMongoRecord(t, client, 4, day(2024, 1, 3), 1)

	dates, err := repo.LastTradingDates(ctx, 2)
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.True(t, dates[0].Equal(day(2024, 1, 3)), "самая свежая дата первая")
	assert.True(t, dates[1].Equal(day(2024, 1, 2)))
}

func TestMongoRepo_Dynamics(t *testing.T) {
	if testing.Short() {
		t.Skip("интеграционный тест, пропуск в -short")
	}

	client := setupMongo(t)
	repo := mongo.NewTradingRepo(client, newTestLogger())
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		seedMongoRecord(t, client, int64(i+1), day(2024, 1, 1+i), 1+i%2)
	}

	records, err := repo.Dynamics(ctx, day(2024, 1, 3), day(2024, 1, 7), domain.ResultFilter{})
	require.NoError(t, err)
	require.Len(t, records, 5, "границы периода включительны")

	oil := 2
	records, err = repo.Dynamics(ctx, day(2024, 1, 1), day(2024, 1, 31), domain.ResultFilter{OilID: &oil})
	require.NoError(t, err)
	assert.Len(t, records, 5)
	for _, rec := range records {
		assert.Equal(t, 2, rec.OilID)
	}
}

func TestMongoRepo_TradingResults(t *testing.T) {
	if testing.Short() {
		t.Skip("интеграционный тест, пропуск в -short")
	}

	client := setupMongo(t)
	repo := mongo.NewTradingRepo(client, newTestLogger())
	ctx := context.Background()

	// Одна дата: при равной дате больший id идёт первым.
	seedMongoRecord(t, client, 1, day(2024, 2, 1), 1)
	seedMongoRecord(t, client, 2, day(2024, 2, 1), 2)
	seedMongoRecord(t, client, 3, day(2024, 2, 2), 3)

	records, err := repo.TradingResults(ctx, domain.ResultFilter{}, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(3), records[0].ID)
	assert.Equal(t, int64(2), records[1].ID)
}

func TestMongoRepo_Ping(t *testing.T) {
	if testing.Short() {
		t.Skip("интеграционный тест, пропуск в -short")
	}

	client := setupMongo(t)
	repo := mongo.NewTradingRepo(client, newTestLogger())
	assert.NoError(t, repo.Ping(context.Background()))
}
