package domain

// SalonStatus represents the visibility of a salon in the public listing
type SalonStatus string

const (
	SalonActive   SalonStatus = "Active"
	SalonInactive SalonStatus = "DeActive"
)

// Break represents a recurring daily break interval.
// From and To are "HH:MM AM/PM" labels with From < To; a minute belongs to the
// break when it falls in [From, To).
type Break struct {
	From string
	To   string
}

// SalonService represents one service offering of a salon
type SalonService struct {
	Name            string
	Price           float64
	DurationMinutes int
}

// Salon represents a salon with fixed operating hours and seat capacity.
// Salons are identified by their unique Name.
type Salon struct {
	Name      string
	OwnerName string
	Location  string
	OpenTime  string // "HH:MM AM/PM"
	CloseTime string // "HH:MM AM/PM"
	SeatCount int    // total simultaneous service capacity
	Status    SalonStatus
	Breaks    []Break
	Services  []SalonService
	Images    []string
}

// IsActive returns true if the salon is visible in the public listing
func (s *Salon) IsActive() bool {
	return s.Status == SalonActive
}

// FindService returns the service offering with the given name, or nil
func (s *Salon) FindService(name string) *SalonService {
	for i := range s.Services {
		if s.Services[i].Name == name {
			return &s.Services[i]
		}
	}
	return nil
}
