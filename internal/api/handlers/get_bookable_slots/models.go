package get_bookable_slots

import (
	"github.com/uzairqr/SalonBook-Service/internal/domain"
	getBookableSlots "github.com/uzairqr/SalonBook-Service/internal/usecase/get_bookable_slots"
)

// SlotResponse один доступный слот
type SlotResponse struct {
	Label         string `json:"label"`     // метка для бронирования, "10:20 AMs1"
	StartTime     string `json:"startTime"` // человекочитаемое время начала
	OccupiedSeats int    `json:"occupiedSeats"`
	TotalSeats    int    `json:"totalSeats"`
}

// GetBookableSlotsResponse ответ со списком доступных слотов
type GetBookableSlotsResponse struct {
	SalonName       string         `json:"salonName"`
	ServiceName     string         `json:"serviceName"`
	DurationMinutes int            `json:"durationMinutes"`
	SeatCount       int            `json:"seatCount"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP DTO
func FromUseCaseResponse(resp *getBookableSlots.Response) *GetBookableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, fromDomainSlot(s))
	}

	return &GetBookableSlotsResponse{
		SalonName:       resp.SalonName,
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.DurationMinutes,
		SeatCount:       resp.SeatCount,
		Slots:           slots,
	}
}

func fromDomainSlot(s domain.BookableSlot) SlotResponse {
	return SlotResponse{
		Label:         s.Label,
		StartTime:     s.StartTime,
		OccupiedSeats: s.OccupiedSeats,
		TotalSeats:    s.TotalSeats,
	}
}
