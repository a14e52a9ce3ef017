package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "github.com/manfrommother/spimex-api/internal/api/http"
	"github.com/manfrommother/spimex-api/internal/api/http/controllers/admin"
	"github.com/manfrommother/spimex-api/internal/api/http/controllers/system"
	tradingctrl "github.com/manfrommother/spimex-api/internal/api/http/controllers/trading"
	"github.com/manfrommother/spimex-api/internal/infrastructure/click"
	"github.com/manfrommother/spimex-api/internal/infrastructure/kafka"
	"github.com/manfrommother/spimex-api/internal/infrastructure/pg"
	"github.com/manfrommother/spimex-api/internal/infrastructure/redis"
	"github.com/manfrommother/spimex-api/internal/pkg/logger"
	"github.com/manfrommother/spimex-api/internal/ports"
	"github.com/manfrommother/spimex-api/internal/usecase/trading"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (подключения открываются в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключается к БД, Redis, Kafka и ClickHouse, инициализирует зависимости
// и запускает HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	reset, err := redis.NewResetClock(a.cfg.Cache.ResetHour, a.cfg.Cache.ResetMinute)
	if err != nil {
		return fmt.Errorf("cache reset time: %w", err)
	}

	db, err := pg.New(&a.cfg.DB)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()

	if err := pg.Migrate(context.Background(), db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	rdb, err := redis.New(&a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer rdb.Close()

	log := logger.New()
	slog.SetDefault(log)

	repo := pg.NewTradingRepo(db, log)
	cache := redis.NewCache(rdb, reset, log)

	producer := kafka.NewProducer(&a.cfg.Kafka)
	defer producer.Close()

	// ClickHouse — только аналитика; без него сервис работает, события просто не пишутся.
	var analytics ports.IQueryAnalytics
	ch, err := click.New(&a.cfg.ClickHouse)
	if err != nil {
		slog.Warn("clickhouse unavailable, query analytics disabled", "error", err)
	} else {
		defer ch.Close()
		writer := click.NewQueryWriter(ch)
		if err := writer.EnsureTable(context.Background()); err != nil {
			slog.Warn("clickhouse table init failed, query analytics disabled", "error", err)
		} else {
			analytics = writer
		}
	}

	uc := trading.New(repo, cache, producer, analytics, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if analytics != nil {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("kafka consumer failed", "error", err)
			}
		}()
	}

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.NewController(repo, cache, log),
		tradingctrl.NewController(uc, log),
		admin.NewController(uc, log))

	slog.Info("application started",
		"http", a.cfg.Server.Host+":"+a.cfg.Server.Port,
		"cache_reset", fmt.Sprintf("%02d:%02d", a.cfg.Cache.ResetHour, a.cfg.Cache.ResetMinute))

	return srv.Start(ctx)
}
