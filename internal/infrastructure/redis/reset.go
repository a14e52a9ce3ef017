package redis

import (
	"fmt"
	"time"
)

// ResetClock — суточное расписание сброса кэша: час и минута, в которые биржа публикует
// новые итоги. Записи живут до ближайшего момента публикации, а не фиксированный срок.
// Передаётся в кэш при создании; глобального состояния нет.
type ResetClock struct {
	hour   int
	minute int
}

// NewResetClock валидирует час (0-23) и минуту (0-59). Значение вне диапазона —
// ошибка конфигурации на старте процесса.
func NewResetClock(hour, minute int) (ResetClock, error) {
	if hour < 0 || hour > 23 {
		return ResetClock{}, fmt.Errorf("reset hour %d out of range 0-23", hour)
	}
	if minute < 0 || minute > 59 {
		return ResetClock{}, fmt.Errorf("reset minute %d out of range 0-59", minute)
	}
	return ResetClock{hour: hour, minute: minute}, nil
}

// NextReset возвращает ближайший будущий момент сброса.
// Момент ровно в час сброса считается уже прошедшим: следующий сброс — завтра
// (запись, созданная в момент публикации, живёт полные сутки).
// Переход через конец месяца и года делает AddDate.
func (rc ResetClock) NextReset(now time.Time) time.Time {
	reset := time.Date(now.Year(), now.Month(), now.Day(), rc.hour, rc.minute, 0, 0, now.Location())
	if !now.Before(reset) {
		reset = reset.AddDate(0, 0, 1)
	}
	return reset
}

// TTL возвращает срок жизни записи до ближайшего сброса, усечённый до целых секунд.
// Неположительный результат (возможен только в последнюю долю секунды перед сбросом
// из-за усечения) — внутренний дефект, а не валидный срок: возвращается ошибка,
// запись в кэш не делается.
func (rc ResetClock) TTL(now time.Time) (time.Duration, error) {
	ttl := rc.NextReset(now).Sub(now).Truncate(time.Second)
	if ttl <= 0 {
		return 0, fmt.Errorf("non-positive ttl %s at %s", ttl, now.Format(time.RFC3339Nano))
	}
	return ttl, nil
}
