package mongo

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/manfrommother/spimex-api/internal/domain"
	"github.com/manfrommother/spimex-api/internal/ports"
)

var _ ports.ITradingRepository = (*TradingRepo)(nil)

// tradingDoc — документ в коллекции trading_results. Числовой id хранится явным полем,
// чтобы порядок внутри одной даты совпадал с PostgreSQL-репозиторием.
type tradingDoc struct {
	ID              int64     `bson:"id"`
	TradingDate     time.Time `bson:"trading_date"`
	OilID           int       `bson:"oil_id"`
	DeliveryTypeID  int       `bson:"delivery_type_id"`
	DeliveryBasisID int       `bson:"delivery_basis_id"`
	Volume          float64   `bson:"volume"`
	Price           float64   `bson:"price"`
	TotalValue      float64   `bson:"total_value"`
	CreatedAt       time.Time `bson:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

// TradingRepo реализует ports.ITradingRepository для MongoDB.
type TradingRepo struct {
	client *Client
	log    *slog.Logger
}

// NewTradingRepo возвращает репозиторий итогов торгов.
func NewTradingRepo(client *Client, log *slog.Logger) *TradingRepo {
	return &TradingRepo{client: client, log: log}
}

// LastTradingDates возвращает последние торговые даты без дубликатов, по убыванию.
func (r *TradingRepo) LastTradingDates(ctx context.Context, limit int) ([]time.Time, error) {
	var dates []time.Time
	if err := r.client.Coll().Distinct(ctx, "trading_date", bson.M{}).Decode(&dates); err != nil {
		r.log.Debug("LastTradingDates failed", "error", err)
		return nil, err
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	if len(dates) > limit {
		dates = dates[:limit]
	}
	return dates, nil
}

// Dynamics возвращает записи за период [start, end] включительно с учётом фильтров.
func (r *TradingRepo) Dynamics(ctx context.Context, start, end time.Time, filter domain.ResultFilter) ([]domain.TradingRecord, error) {
	query := bson.M{"trading_date": bson.M{"$gte": start, "$lte": end}}
	applyFilter(query, filter)

	opts := options.Find().SetSort(bson.D{{Key: "trading_date", Value: -1}, {Key: "id", Value: -1}})
	return r.find(ctx, query, opts)
}

// TradingResults возвращает последние limit записей с учётом фильтров.
func (r *TradingRepo) TradingResults(ctx context.Context, filter domain.ResultFilter, limit int) ([]domain.TradingRecord, error) {
	query := bson.M{}
	applyFilter(query, filter)

	opts := options.Find().
		SetSort(bson.D{{Key: "trading_date", Value: -1}, {Key: "id", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, query, opts)
}

// Ping проверяет доступность БД.
func (r *TradingRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

// applyFilter добавляет условия-равенства по заданным фильтрам (AND-семантика).
func applyFilter(query bson.M, f domain.ResultFilter) {
	if f.OilID != nil {
		query["oil_id"] = *f.OilID
	}
	if f.DeliveryTypeID != nil {
		query["delivery_type_id"] = *f.DeliveryTypeID
	}
	if f.DeliveryBasisID != nil {
		query["delivery_basis_id"] = *f.DeliveryBasisID
	}
}

func (r *TradingRepo) find(ctx context.Context, query bson.M, opts *options.FindOptionsBuilder) ([]domain.TradingRecord, error) {
	cursor, err := r.client.Coll().Find(ctx, query, opts)
	if err != nil {
		r.log.Debug("find failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []tradingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	records := make([]domain.TradingRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, domain.TradingRecord{
			ID:              d.ID,
			TradingDate:     d.TradingDate,
			OilID:           d.OilID,
			DeliveryTypeID:  d.DeliveryTypeID,
			DeliveryBasisID: d.DeliveryBasisID,
			Volume:          d.Volume,
			Price:           d.Price,
			TotalValue:      d.TotalValue,
			CreatedAt:       d.CreatedAt,
			UpdatedAt:       d.UpdatedAt,
		})
	}
	return records, nil
}
