package get_bookable_slots

import (
	"github.com/uzairqr/SalonBook-Service/internal/domain"
	"github.com/uzairqr/SalonBook-Service/internal/schedule"
	"github.com/uzairqr/SalonBook-Service/internal/seatledger"
	"github.com/uzairqr/SalonBook-Service/pkg/timegrid"
)

// scanSlots проходит рабочее окно салона с шагом сетки и собирает
// упорядоченный список доступных слотов для услуги указанной длительности.
//
// Кандидат отбрасывается, если:
//   - его начало попадает в перерыв;
//   - в момент начала заняты все места (с учётом буфера и асимметричного
//     расширения на длительность кандидата, см. seatledger);
//   - услуга не помещается до закрытия;
//   - интервал услуги пересекает перерыв;
//   - интервал услуги пересекает существующее бронирование с буфером.
//
// Результат пересчитывается заново при каждом вызове: и "сейчас", и список
// бронирований могли измениться
func scanSlots(
	salon *domain.Salon,
	bookings []*domain.Booking,
	openMinutes, closeMinutes, nowMinutes, durationMinutes int,
	p Params,
) []domain.BookableSlot {
	slots := make([]domain.BookableSlot, 0)

	start := nowMinutes
	if openMinutes > start {
		start = openMinutes
	}
	start = timegrid.Quantize(start, p.GridStepMinutes)

	for ; start < closeMinutes; start += p.GridStepMinutes {
		if schedule.IsInBreak(salon, start) {
			continue
		}

		occupied := seatledger.OccupiedSeatsAt(bookings, start, durationMinutes, p.BufferMinutes)
		if occupied >= salon.SeatCount {
			continue
		}

		end := start + durationMinutes
		if end > closeMinutes {
			continue
		}
		if schedule.CrossesBreak(salon, start, end) {
			continue
		}
		if !seatledger.FitsWithoutOverlap(bookings, start, end, p.BufferMinutes) {
			continue
		}

		slot := domain.BookableSlot{
			StartTime:     timegrid.ToLabel(start),
			StartMinutes:  start,
			OccupiedSeats: occupied,
			TotalSeats:    salon.SeatCount,
		}
		slot.Label = timegrid.EncodeSlotLabel(start, slot.NextSeatOrdinal())
		slots = append(slots, slot)
	}

	return slots
}
