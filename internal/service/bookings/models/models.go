package models

import (
	"github.com/uzairqr/SalonBook-Service/internal/domain"
	"github.com/uzairqr/SalonBook-Service/pkg/timegrid"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования клиентом.
// DeviceID пустой для отмены с панели салона — владелец панели отменяет
// любое бронирование своего салона
type CancelBookingRequest struct {
	Code     string `json:"code"`
	DeviceID string `json:"deviceId,omitempty"`
}

// GetUserBookingsRequest запрос истории бронирований клиента
type GetUserBookingsRequest struct {
	DeviceID string  `json:"deviceId"`
	Status   *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	Code            string  `json:"code"`
	SalonName       string  `json:"salonName"`
	OwnerName       string  `json:"ownerName"`
	Location        string  `json:"location"`
	Service         string  `json:"service,omitempty"`
	TimeLabel       string  `json:"time"`
	StartTime       string  `json:"startTime,omitempty"` // без номера места
	DurationMinutes int     `json:"durationMinutes"`
	Token           *string `json:"token,omitempty"`
	Status          string  `json:"status"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerNumber"`
	Date            string  `json:"date"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// SalonBookingsResponse бронирования салона, сгруппированные по статусу,
// со счётчиками для панели владельца
type SalonBookingsResponse struct {
	Pending   []BookingResponse `json:"pending"`
	Completed []BookingResponse `json:"completed"`
	Canceled  []BookingResponse `json:"canceled"`

	PendingCount   int `json:"pendingCount"`
	CompletedCount int `json:"completedCount"`
	CanceledCount  int `json:"canceledCount"`
}

// CancelAllResponse результат массовой отмены
type CancelAllResponse struct {
	Removed int `json:"removed"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		Code:            b.Code,
		SalonName:       b.SalonName,
		OwnerName:       b.OwnerName,
		Location:        b.Location,
		Service:         b.Service,
		TimeLabel:       b.TimeLabel,
		DurationMinutes: b.DurationMinutes,
		Token:           b.Token,
		Status:          string(b.Status),
		CustomerName:    b.Customer.Name,
		CustomerPhone:   b.Customer.Phone,
		Date:            b.Date,
	}

	if start, _, err := timegrid.ParseSlotLabel(b.TimeLabel); err == nil {
		resp.StartTime = timegrid.ToLabel(start)
	}

	return resp
}

// FromDomainBookings конвертирует срез domain моделей в DTO
func FromDomainBookings(bookings []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return result
}
