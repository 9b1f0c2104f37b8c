package domain

// BookableSlot represents a time slot currently open for booking.
// It is derived, never persisted, and valid only for the instant it was
// computed: concurrent commits may invalidate it at any time.
type BookableSlot struct {
	Label         string // encoded slot label with the next free seat ordinal
	StartTime     string // "HH:MM AM/PM"
	StartMinutes  int
	OccupiedSeats int // seats taken at generation time
	TotalSeats    int
}

// NextSeatOrdinal returns the 1-based seat ordinal a commit at this slot
// would be assigned
func (s *BookableSlot) NextSeatOrdinal() int {
	return s.OccupiedSeats + 1
}
