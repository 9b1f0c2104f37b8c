package domain

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusCompleted BookingStatus = "completed"
	StatusCanceled  BookingStatus = "canceled"
)

// Customer identifies who made a booking. DeviceID is the stable identity;
// name and phone are whatever the customer chose to share.
type Customer struct {
	DeviceID string
	Name     string
	Phone    string
}

// Booking represents a committed appointment at a salon.
//
// TimeLabel carries both the start time and the seat ordinal in the persisted
// wire format "HH:MM AM/PMs<seat>" (see pkg/timegrid). Token bookings carry
// the literal label "token" and a generated Token instead of a timed slot.
type Booking struct {
	SalonName       string
	OwnerName       string
	Location        string
	Service         string // service name, empty for walk-ins
	TimeLabel       string
	DurationMinutes int
	Token           *string
	Status          BookingStatus
	Customer        Customer
	Code            string // unique booking code, e.g. "BOOKa1b2c3"
	Date            string // YYYY-MM-DD
}

// IsPending returns true if the booking still occupies a seat
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsToken returns true for queue-position bookings without a timed slot
func (b *Booking) IsToken() bool {
	return b.TimeLabel == TokenTimeLabel
}
