package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// (в том числе при повторной отмене по тому же коду)
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNoCurrentCustomer возвращается, когда у салона нет активного
	// бронирования, начавшегося к текущему моменту
	ErrNoCurrentCustomer = errors.New("no pending bookings at or before the current time")

	// ErrAccessDenied возвращается при попытке отменить чужое бронирование
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStoreUnavailable возвращается при недоступности хранилища или
	// исчерпании повторов на конфликте версий
	ErrStoreUnavailable = errors.New("service: store unavailable")
)
