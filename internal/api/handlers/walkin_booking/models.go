package walkin_booking

import (
	walkinBooking "github.com/uzairqr/SalonBook-Service/internal/usecase/walkin_booking"
)

// WalkinBookingRequest HTTP запрос на walk-in бронирование
type WalkinBookingRequest struct {
	DurationMinutes int `json:"durationMinutes"`
}

// WalkinBookingResponse HTTP ответ на walk-in бронирование
type WalkinBookingResponse struct {
	Code            string `json:"code"`
	SalonName       string `json:"salonName"`
	TimeLabel       string `json:"time"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Date            string `json:"date"`
	Status          string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP DTO
func FromUseCaseResponse(resp *walkinBooking.Response) *WalkinBookingResponse {
	return &WalkinBookingResponse{
		Code:            resp.Code,
		SalonName:       resp.SalonName,
		TimeLabel:       resp.TimeLabel,
		StartTime:       resp.StartTime,
		DurationMinutes: resp.DurationMinutes,
		Date:            resp.Date,
		Status:          string(resp.Status),
	}
}
