package trading

import (
	"time"

	"github.com/manfrommother/spimex-api/internal/domain"
)

// DatesRequest — параметры GET /api/trading/dates.
type DatesRequest struct {
	Limit int `form:"limit,default=10" binding:"gte=1,lte=100"`
}

// DynamicsRequest — параметры GET /api/trading/dynamics. Даты в формате YYYY-MM-DD,
// обе обязательны; фильтры опциональны.
type DynamicsRequest struct {
	StartDate       time.Time `form:"start_date" time_format:"2006-01-02" binding:"required"`
	EndDate         time.Time `form:"end_date" time_format:"2006-01-02" binding:"required"`
	OilID           *int      `form:"oil_id" binding:"omitempty,gte=0"`
	DeliveryTypeID  *int      `form:"delivery_type_id" binding:"omitempty,gte=0"`
	DeliveryBasisID *int      `form:"delivery_basis_id" binding:"omitempty,gte=0"`
}

// Filter собирает доменный фильтр из параметров запроса.
func (r *DynamicsRequest) Filter() domain.ResultFilter {
	return domain.ResultFilter{
		OilID:           r.OilID,
		DeliveryTypeID:  r.DeliveryTypeID,
		DeliveryBasisID: r.DeliveryBasisID,
	}
}

// ResultsRequest — параметры GET /api/trading/results.
type ResultsRequest struct {
	OilID           *int `form:"oil_id" binding:"omitempty,gte=0"`
	DeliveryTypeID  *int `form:"delivery_type_id" binding:"omitempty,gte=0"`
	DeliveryBasisID *int `form:"delivery_basis_id" binding:"omitempty,gte=0"`
	Limit           int  `form:"limit,default=100" binding:"gte=1,lte=1000"`
}

// Filter собирает доменный фильтр из параметров запроса.
func (r *ResultsRequest) Filter() domain.ResultFilter {
	return domain.ResultFilter{
		OilID:           r.OilID,
		DeliveryTypeID:  r.DeliveryTypeID,
		DeliveryBasisID: r.DeliveryBasisID,
	}
}
