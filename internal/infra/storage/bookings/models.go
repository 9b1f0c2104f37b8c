package bookings

import "github.com/uzairqr/SalonBook-Service/internal/domain"

// bookingRecord wire-модель записи коллекции "bookings".
// Имена полей совпадают с историческим форматом документов
type bookingRecord struct {
	SalonName      string  `json:"salonName"`
	OwnerName      string  `json:"ownerName"`
	Location       string  `json:"location"`
	DeviceID       string  `json:"deviceId"`
	Service        string  `json:"service"`
	Time           string  `json:"time"`
	TimeTake       int     `json:"time_take"`
	Token          *string `json:"token,omitempty"`
	CustomerName   string  `json:"customerName"`
	CustomerNumber string  `json:"customerNumber"`
	Code           string  `json:"code"`
	Date           string  `json:"date"`
	Status         string  `json:"status"`
}

func toDomain(r *bookingRecord) *domain.Booking {
	return &domain.Booking{
		SalonName:       r.SalonName,
		OwnerName:       r.OwnerName,
		Location:        r.Location,
		Service:         r.Service,
		TimeLabel:       r.Time,
		DurationMinutes: r.TimeTake,
		Token:           r.Token,
		Status:          domain.BookingStatus(r.Status),
		Customer: domain.Customer{
			DeviceID: r.DeviceID,
			Name:     r.CustomerName,
			Phone:    r.CustomerNumber,
		},
		Code: r.Code,
		Date: r.Date,
	}
}

func fromDomain(b *domain.Booking) *bookingRecord {
	return &bookingRecord{
		SalonName:      b.SalonName,
		OwnerName:      b.OwnerName,
		Location:       b.Location,
		DeviceID:       b.Customer.DeviceID,
		Service:        b.Service,
		Time:           b.TimeLabel,
		TimeTake:       b.DurationMinutes,
		Token:          b.Token,
		CustomerName:   b.Customer.Name,
		CustomerNumber: b.Customer.Phone,
		Code:           b.Code,
		Date:           b.Date,
		Status:         string(b.Status),
	}
}
