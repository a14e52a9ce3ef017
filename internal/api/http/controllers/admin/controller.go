package admin

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manfrommother/spimex-api/internal/ports"
)

// Controller — служебные операции. Доступ ограничивается снаружи (сетью или реверс-прокси).
type Controller struct {
	uc  ports.ITradingUseCase
	log *slog.Logger
}

func NewController(uc ports.ITradingUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes регистрирует маршруты контроллера.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/cache/invalidate", c.invalidateCache)
}

// invalidateCache godoc
// @Summary Принудительный сброс кэша
// @Description Удаляет все закэшированные ответы; следующие запросы пойдут в базу
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/cache/invalidate [post]
func (c *Controller) invalidateCache(ctx *gin.Context) {
	if err := c.uc.InvalidateCache(ctx.Request.Context()); err != nil {
		c.log.Error("cache invalidation failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "cache invalidated"})
}
