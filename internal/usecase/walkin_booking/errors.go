package walkin_booking

import "errors"

// Walk-in путь не сканирует окно вперёд: единственный кандидат либо
// проходит, либо отклоняется с конкретной причиной
var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("walkin_booking: salon not found")

	// ErrSalonClosed возвращается, когда салон уже закрыт
	ErrSalonClosed = errors.New("walkin_booking: salon is closed")

	// ErrNotYetOpen возвращается до открытия (с учётом отступа)
	ErrNotYetOpen = errors.New("walkin_booking: salon has not yet opened")

	// ErrOnBreak возвращается, когда момент начала попадает в перерыв;
	// текст ошибки содержит границы перерыва
	ErrOnBreak = errors.New("walkin_booking: salon is on break")

	// ErrSlotFull возвращается при исчерпании мест в момент начала
	ErrSlotFull = errors.New("walkin_booking: time slot is fully booked")

	// ErrDoesNotFit возвращается, когда длительность пересекает закрытие,
	// перерыв или соседнее бронирование с буфером
	ErrDoesNotFit = errors.New("walkin_booking: service duration does not fit")

	// ErrInvalidSchedule возвращается, когда рабочие часы салона не парсятся
	ErrInvalidSchedule = errors.New("walkin_booking: invalid salon schedule")

	// ErrStoreUnavailable возвращается при недоступности хранилища или
	// исчерпании повторов на конфликте версий
	ErrStoreUnavailable = errors.New("walkin_booking: store unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("walkin_booking: invalid input data")
)
