package create_booking

import (
	createBooking "github.com/uzairqr/SalonBook-Service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP запрос на создание бронирования.
// time — слот из списка доступных ("10:20 AMs1") или литерал "token"
type CreateBookingRequest struct {
	SalonName     string `json:"salonName"`
	ServiceName   string `json:"service"`
	TimeLabel     string `json:"time"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerNumber"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Идентификатор устройства приходит из контекста аутентификации
func (r *CreateBookingRequest) ToUseCaseRequest(deviceID string) *createBooking.Request {
	return &createBooking.Request{
		SalonName:     r.SalonName,
		ServiceName:   r.ServiceName,
		TimeLabel:     r.TimeLabel,
		DeviceID:      deviceID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
	}
}

// CreateBookingResponse HTTP ответ на создание бронирования
type CreateBookingResponse struct {
	Code            string  `json:"code"`
	Token           *string `json:"token,omitempty"`
	SalonName       string  `json:"salonName"`
	ServiceName     string  `json:"service"`
	TimeLabel       string  `json:"time"`
	DurationMinutes int     `json:"durationMinutes"`
	Date            string  `json:"date"`
	Status          string  `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP DTO
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Code:            resp.Code,
		Token:           resp.Token,
		SalonName:       resp.SalonName,
		ServiceName:     resp.ServiceName,
		TimeLabel:       resp.TimeLabel,
		DurationMinutes: resp.DurationMinutes,
		Date:            resp.Date,
		Status:          string(resp.Status),
	}
}
