package domain

// Default engine tunables. Each of these is surfaced through the [engine]
// section of config.toml; the defaults apply when the section is absent.
const (
	// DefaultGridStepMinutes is the slot grid granularity of the customer path
	DefaultGridStepMinutes = 10

	// DefaultWalkinGridStepMinutes rounds the walk-in start instant
	DefaultWalkinGridStepMinutes = 10

	// DefaultBookingBufferMinutes pads existing bookings in the customer path
	DefaultBookingBufferMinutes = 10

	// DefaultWalkinBufferMinutes pads existing bookings in the walk-in path
	DefaultWalkinBufferMinutes = 5

	// DefaultOpenGraceMinutes is the staff setup time after opening before
	// the first slot may be offered
	DefaultOpenGraceMinutes = 20

	// DefaultListingLeadMinutes is added to the open time when computing the
	// "next available" hint shown in the salon listing
	DefaultListingLeadMinutes = 30
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TokenTimeLabel marks a queue-position booking without a timed slot
const TokenTimeLabel = "token"

// Store collection names
const (
	SalonsCollection   = "salons"
	BookingsCollection = "bookings"
)
