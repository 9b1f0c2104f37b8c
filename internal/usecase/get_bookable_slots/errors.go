package get_bookable_slots

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("get_bookable_slots: salon not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена у салона
	ErrServiceNotFound = errors.New("get_bookable_slots: service not found")

	// ErrSalonClosed возвращается, когда текущее время за пределами рабочих часов
	ErrSalonClosed = errors.New("get_bookable_slots: salon is closed")

	// ErrInvalidSchedule возвращается, когда рабочие часы салона не парсятся.
	// Фатально для всего расчёта доступности этого салона
	ErrInvalidSchedule = errors.New("get_bookable_slots: invalid salon schedule")

	// ErrStoreUnavailable возвращается при недоступности хранилища,
	// операция может быть повторена вызывающим
	ErrStoreUnavailable = errors.New("get_bookable_slots: store unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_bookable_slots: invalid input data")
)
