package trading

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manfrommother/spimex-api/internal/domain"
	"github.com/manfrommother/spimex-api/internal/ports"
)

// Controller обслуживает запросы к торговым данным SPIMEX.
type Controller struct {
	uc  ports.ITradingUseCase
	log *slog.Logger
}

func NewController(uc ports.ITradingUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes регистрирует маршруты контроллера.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/trading")
	{
		api.GET("/dates", c.lastTradingDates)
		api.GET("/dynamics", c.dynamics)
		api.GET("/results", c.tradingResults)
	}
}

// lastTradingDates godoc
// @Summary Даты последних торговых дней
// @Description Возвращает список дат последних торговых дней, от новых к старым
// @Tags trading
// @Produce json
// @Param limit query int false "Количество дат (1-100)" default(10)
// @Success 200 {object} domain.DatesPage
// @Failure 400 {object} map[string]string
// @Router /api/trading/dates [get]
func (c *Controller) lastTradingDates(ctx *gin.Context) {
	var req DatesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := c.uc.LastTradingDates(ctx.Request.Context(), req.Limit)
	if err != nil {
		c.log.Error("last trading dates failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// dynamics godoc
// @Summary Динамика торгов за период
// @Description Возвращает торги за период с опциональной фильтрацией по инструменту
// @Tags trading
// @Produce json
// @Param start_date query string true "Начало периода (YYYY-MM-DD)"
// @Param end_date query string true "Конец периода (YYYY-MM-DD)"
// @Param oil_id query int false "Идентификатор нефтепродукта"
// @Param delivery_type_id query int false "Идентификатор типа поставки"
// @Param delivery_basis_id query int false "Идентификатор базиса поставки"
// @Success 200 {object} domain.DynamicsPage
// @Failure 400 {object} map[string]string
// @Router /api/trading/dynamics [get]
func (c *Controller) dynamics(ctx *gin.Context) {
	var req DynamicsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := c.uc.Dynamics(ctx.Request.Context(), req.StartDate, req.EndDate, req.Filter())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPeriod) || errors.Is(err, domain.ErrPeriodTooLong) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.log.Error("dynamics failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// tradingResults godoc
// @Summary Результаты последних торгов
// @Description Возвращает последние торги с опциональной фильтрацией по инструменту
// @Tags trading
// @Produce json
// @Param oil_id query int false "Идентификатор нефтепродукта"
// @Param delivery_type_id query int false "Идентификатор типа поставки"
// @Param delivery_basis_id query int false "Идентификатор базиса поставки"
// @Param limit query int false "Количество записей (1-1000)" default(100)
// @Success 200 {object} domain.ResultsPage
// @Failure 400 {object} map[string]string
// @Router /api/trading/results [get]
func (c *Controller) tradingResults(ctx *gin.Context) {
	var req ResultsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := c.uc.TradingResults(ctx.Request.Context(), req.Filter(), req.Limit)
	if err != nil {
		c.log.Error("trading results failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, page)
}
