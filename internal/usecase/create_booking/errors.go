package create_booking

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("create_booking: salon not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена у салона
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSalonClosed возвращается, когда салон уже закрыт
	ErrSalonClosed = errors.New("create_booking: salon is closed")

	// ErrInvalidSchedule возвращается, когда рабочие часы салона не парсятся
	ErrInvalidSchedule = errors.New("create_booking: invalid salon schedule")

	// ErrSlotNoLongerAvailable возвращается, когда выбранный слот перестал
	// проходить проверку доступности между показом и записью. Клиент должен
	// запросить свежий список слотов
	ErrSlotNoLongerAvailable = errors.New("create_booking: slot is no longer available")

	// ErrStoreUnavailable возвращается при недоступности хранилища или
	// исчерпании повторов на конфликте версий
	ErrStoreUnavailable = errors.New("create_booking: store unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")
)
