package schedule

import (
	"errors"
	"fmt"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
	"github.com/uzairqr/SalonBook-Service/pkg/timegrid"
)

var (
	// ErrUnparsableHours возвращается, когда openTime/closeTime салона не парсятся.
	// Эта ошибка фатальна для всего расчёта доступности салона
	ErrUnparsableHours = errors.New("schedule: salon operating hours are unparsable")
)

// Window возвращает рабочий интервал салона в минутах от полуночи.
// openMinutes дополнительно сдвинут на graceMinutes — время на подготовку
// персонала после открытия, до первого доступного слота
func Window(salon *domain.Salon, graceMinutes int) (openMinutes, closeMinutes int, err error) {
	openMinutes, err = timegrid.ToMinutes(salon.OpenTime)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: openTime: %v", ErrUnparsableHours, err)
	}

	closeMinutes, err = timegrid.ToMinutes(salon.CloseTime)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: closeTime: %v", ErrUnparsableHours, err)
	}

	return openMinutes + graceMinutes, closeMinutes, nil
}

// IsInBreak проверяет, попадает ли минута в один из перерывов салона.
// Минута принадлежит перерыву, если лежит в [from, to).
// Перерывы с некорректными метками времени пропускаются — ошибка парсинга
// фатальна только для конкретного перерыва, не для всего расчёта
func IsInBreak(salon *domain.Salon, minute int) bool {
	return BreakContaining(salon, minute) != nil
}

// BreakContaining возвращает перерыв, содержащий указанную минуту, или nil
func BreakContaining(salon *domain.Salon, minute int) *domain.Break {
	for i := range salon.Breaks {
		from, err := timegrid.ToMinutes(salon.Breaks[i].From)
		if err != nil {
			continue
		}
		to, err := timegrid.ToMinutes(salon.Breaks[i].To)
		if err != nil {
			continue
		}
		if minute >= from && minute < to {
			return &salon.Breaks[i]
		}
	}
	return nil
}

// CrossesBreak проверяет, пересекает ли интервал [start, end) какой-либо
// перерыв салона. Граничные случаи (услуга заканчивается ровно в начале
// перерыва) пересечением не считаются
func CrossesBreak(salon *domain.Salon, start, end int) bool {
	for i := range salon.Breaks {
		from, err := timegrid.ToMinutes(salon.Breaks[i].From)
		if err != nil {
			continue
		}
		to, err := timegrid.ToMinutes(salon.Breaks[i].To)
		if err != nil {
			continue
		}
		if end > from && start < to {
			return true
		}
	}
	return false
}

// NextAvailableLabel возвращает ориентировочное время ближайшего слота для
// карточки салона в публичном списке: открытие + leadMinutes, со сдвигом ещё
// на leadMinutes, если это время попадает в перерыв
func NextAvailableLabel(salon *domain.Salon, leadMinutes int) (string, error) {
	open, err := timegrid.ToMinutes(salon.OpenTime)
	if err != nil {
		return "", fmt.Errorf("%w: openTime: %v", ErrUnparsableHours, err)
	}

	next := open + leadMinutes
	if IsInBreak(salon, next) {
		next += leadMinutes
	}

	return timegrid.ToLabel(next), nil
}
