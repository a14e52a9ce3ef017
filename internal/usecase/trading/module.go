package trading

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/manfrommother/spimex-api/internal/domain"
	"github.com/manfrommother/spimex-api/internal/ports"
)

// Ключ кэша — канонический: имя операции и её параметры в фиксированном порядке через ':'.
// Незаданный опциональный фильтр кодируется маркером "-", даты — как YYYY-MM-DD.
// Одинаковые логические запросы всегда дают один ключ, разные параметры — разные ключи.
const absentMarker = "-"

// filterPart кодирует опциональный фильтр для ключа кэша.
func filterPart(v *int) string {
	if v == nil {
		return absentMarker
	}
	return strconv.Itoa(*v)
}

// datesKey — ключ для списка последних торговых дат.
func datesKey(limit int) string {
	return "trading_dates:" + strconv.Itoa(limit)
}

// dynamicsKey — ключ для динамики торгов за период.
func dynamicsKey(start, end time.Time, f domain.ResultFilter) string {
	return strings.Join([]string{
		"dynamics",
		start.Format("2006-01-02"),
		end.Format("2006-01-02"),
		filterPart(f.OilID),
		filterPart(f.DeliveryTypeID),
		filterPart(f.DeliveryBasisID),
	}, ":")
}

// resultsKey — ключ для последних результатов торгов.
func resultsKey(f domain.ResultFilter, limit int) string {
	return strings.Join([]string{
		"trading_results",
		filterPart(f.OilID),
		filterPart(f.DeliveryTypeID),
		filterPart(f.DeliveryBasisID),
		strconv.Itoa(limit),
	}, ":")
}

// UseCase — бизнес-логика чтения итогов торгов: кэш, при промахе запрос к хранилищу,
// событие обслуженного запроса в брокер.
type UseCase struct {
	repo      ports.ITradingRepository
	cache     ports.ICache
	broker    ports.IProducer
	analytics ports.IQueryAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс торгов. broker и analytics могут быть nil — тогда события
// запросов не публикуются и не сохраняются.
func New(repo ports.ITradingRepository, cache ports.ICache, broker ports.IProducer, analytics ports.IQueryAnalytics, log *slog.Logger) *UseCase {
	return &UseCase{repo: repo, cache: cache, broker: broker, analytics: analytics, log: log}
}
