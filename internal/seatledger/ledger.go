// Package seatledger считает занятость посадочных мест салона по списку
// существующих бронирований с учётом буферного времени между соседними
// бронированиями.
package seatledger

import (
	"github.com/uzairqr/SalonBook-Service/internal/domain"
	"github.com/uzairqr/SalonBook-Service/pkg/timegrid"
)

// OccupiedSeatsAt подсчитывает, сколько бронирований занимают место в момент
// instant. Бронирование занимает место, если instant попадает в его интервал,
// расширенный буфером: [start - candidateDuration - buffer, end + buffer).
//
// Нижняя граница намеренно асимметрична: из неё вычитается длительность
// КАНДИДАТА, а не существующего бронирования. Так резервируется достаточно
// времени, чтобы новая услуга указанной длины не могла начаться и всё равно
// пересечься с существующим бронированием после добавления буфера.
//
// Неактивные и токен-бронирования пропускаются; бронирования с нечитаемой
// меткой времени тоже (ошибка парсинга не прерывает подсчёт).
func OccupiedSeatsAt(bookings []*domain.Booking, instant, candidateDuration, bufferMinutes int) int {
	count := 0

	for _, b := range bookings {
		if !b.IsPending() || b.IsToken() {
			continue
		}

		start, _, err := timegrid.ParseSlotLabel(b.TimeLabel)
		if err != nil {
			continue
		}
		end := start + b.DurationMinutes

		if instant >= start-candidateDuration-bufferMinutes && instant < end+bufferMinutes {
			count++
		}
	}

	return count
}

// FitsWithoutOverlap проверяет, что интервал [start, end) не пересекается ни
// с одним существующим бронированием, расширенным буфером с обеих сторон.
//
// Это финальная проверка на всю длительность услуги, отличная от поштучного
// подсчёта мест: в момент start место может быть свободно, а дальше по
// интервалу конфликт всё равно возможен.
func FitsWithoutOverlap(bookings []*domain.Booking, start, end, bufferMinutes int) bool {
	for _, b := range bookings {
		if !b.IsPending() || b.IsToken() {
			continue
		}

		bStart, _, err := timegrid.ParseSlotLabel(b.TimeLabel)
		if err != nil {
			continue
		}
		bEnd := bStart + b.DurationMinutes

		if end > bStart-bufferMinutes && start < bEnd+bufferMinutes {
			return false
		}
	}

	return true
}

// FilterSalonPending возвращает активные бронирования салона на указанную
// дату — снимок, по которому считается занятость
func FilterSalonPending(bookings []*domain.Booking, salonName, date string) []*domain.Booking {
	filtered := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.SalonName != salonName || !b.IsPending() {
			continue
		}
		if date != "" && b.Date != date {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered
}
