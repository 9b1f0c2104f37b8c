package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.repository: booking not found")

	// ErrVersionConflict возвращается, когда коллекция была изменена
	// конкурентной записью между чтением и записью
	ErrVersionConflict = errors.New("bookings.repository: collection version conflict")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("bookings.repository: store error")

	// ErrDecode возвращается, когда записи коллекции не декодируются
	ErrDecode = errors.New("bookings.repository: failed to decode records")
)
