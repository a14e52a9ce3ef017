package domain

import (
	"errors"
	"time"
)

// MaxPeriodDays — максимальная длина периода для выборки динамики торгов.
const MaxPeriodDays = 365

// Ошибки валидации периода. Контроллер маппит их в 400.
var (
	ErrInvalidPeriod = errors.New("start date is after end date")
	ErrPeriodTooLong = errors.New("period exceeds 365 days")
)

// TradingRecord — одна запись итогов торгов СПИМЕКС. Записи неизменяемы после загрузки.
// TotalValue хранится как есть и никогда не пересчитывается из Volume*Price.
type TradingRecord struct {
	ID              int64     `json:"id"`
	TradingDate     time.Time `json:"trading_date"`
	OilID           int       `json:"oil_id"`
	DeliveryTypeID  int       `json:"delivery_type_id"`
	DeliveryBasisID int       `json:"delivery_basis_id"`
	Volume          float64   `json:"volume"`
	Price           float64   `json:"price"`
	TotalValue      float64   `json:"total_value"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// ResultFilter — опциональные фильтры-равенства по измерениям записи (AND-семантика).
// nil означает, что фильтр не задан.
type ResultFilter struct {
	OilID           *int
	DeliveryTypeID  *int
	DeliveryBasisID *int
}

// DatesPage — ответ со списком последних торговых дат.
type DatesPage struct {
	Dates []time.Time `json:"dates"`
	Total int         `json:"total"`
}

// DynamicsPage — ответ с торгами за период.
type DynamicsPage struct {
	Result    []TradingRecord `json:"result"`
	Total     int             `json:"total"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
}

// ResultsPage — ответ с последними результатами торгов.
type ResultsPage struct {
	Result []TradingRecord `json:"result"`
	Total  int             `json:"total"`
}

// QueryEvent — событие обслуженного запроса. Публикуется в Kafka и оседает в ClickHouse.
type QueryEvent struct {
	Endpoint   string    `json:"endpoint"`
	CacheKey   string    `json:"cache_key"`
	CacheHit   bool      `json:"cache_hit"`
	Total      int       `json:"total"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}
