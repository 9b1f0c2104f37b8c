package salons

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("salon not found")

	// ErrSalonExists возвращается при регистрации под занятым именем
	ErrSalonExists = errors.New("salon name already exists")

	// ErrInvalidSchedule возвращается, когда открытие не раньше закрытия
	// или времена не парсятся
	ErrInvalidSchedule = errors.New("opening time must be before closing time")

	// ErrInvalidBreak возвращается, когда перерыв имеет некорректные границы
	// или выходит за рабочие часы
	ErrInvalidBreak = errors.New("invalid break range")

	// ErrNoServices возвращается, когда у салона нет ни одной валидной услуги
	ErrNoServices = errors.New("at least one valid service is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStoreUnavailable возвращается при недоступности хранилища или
	// исчерпании повторов на конфликте версий
	ErrStoreUnavailable = errors.New("service: store unavailable")
)
