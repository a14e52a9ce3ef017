package system

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manfrommother/spimex-api/internal/ports"
)

// Controller — сервисные маршруты: информация о сервисе и пробы.
type Controller struct {
	repo  ports.ITradingRepository
	cache ports.ICache
	log   *slog.Logger
}

func NewController(repo ports.ITradingRepository, cache ports.ICache, log *slog.Logger) *Controller {
	return &Controller{repo: repo, cache: cache, log: log}
}

// RegisterRoutes регистрирует маршруты контроллера.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/", c.info)
	r.GET("/liveness", c.liveness)
	r.GET("/readyness", c.readyness)
}

func (c *Controller) info(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "SPIMEX Trading API",
		"version": "1.0.0",
		"endpoints": []string{
			"/api/trading/dates",
			"/api/trading/dynamics",
			"/api/trading/results",
			"/api/cache/invalidate",
		},
	})
}

func (c *Controller) liveness(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// readyness проверяет доступность базы и кэша; при недоступности любого из них отвечает 503.
func (c *Controller) readyness(ctx *gin.Context) {
	if err := c.repo.Ping(ctx.Request.Context()); err != nil {
		c.log.Error("readyness: database unreachable", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unavailable"})
		return
	}
	if err := c.cache.Ping(ctx.Request.Context()); err != nil {
		c.log.Error("readyness: cache unreachable", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "cache unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
