package salons

import "github.com/uzairqr/SalonBook-Service/internal/domain"

// salonRecord wire-модель записи коллекции "salons".
// Имена полей совпадают с историческим форматом документов
type salonRecord struct {
	OwnerName string          `json:"ownerName"`
	SalonName string          `json:"salonName"`
	Location  string          `json:"location"`
	OpenTime  string          `json:"openTime"`
	CloseTime string          `json:"closeTime"`
	SeatCount int             `json:"SeatCount"`
	Status    string          `json:"status"`
	Breaks    []breakRecord   `json:"breaks"`
	Services  []serviceRecord `json:"services"`
	Images    []string        `json:"salonImages,omitempty"`
}

type breakRecord struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type serviceRecord struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Time  int     `json:"time"`
}

func toDomain(r *salonRecord) *domain.Salon {
	s := &domain.Salon{
		Name:      r.SalonName,
		OwnerName: r.OwnerName,
		Location:  r.Location,
		OpenTime:  r.OpenTime,
		CloseTime: r.CloseTime,
		SeatCount: r.SeatCount,
		Status:    domain.SalonStatus(r.Status),
		Images:    r.Images,
	}
	for _, b := range r.Breaks {
		s.Breaks = append(s.Breaks, domain.Break{From: b.From, To: b.To})
	}
	for _, svc := range r.Services {
		s.Services = append(s.Services, domain.SalonService{
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: svc.Time,
		})
	}
	return s
}

func fromDomain(s *domain.Salon) *salonRecord {
	r := &salonRecord{
		OwnerName: s.OwnerName,
		SalonName: s.Name,
		Location:  s.Location,
		OpenTime:  s.OpenTime,
		CloseTime: s.CloseTime,
		SeatCount: s.SeatCount,
		Status:    string(s.Status),
		Images:    s.Images,
		Breaks:    make([]breakRecord, 0, len(s.Breaks)),
		Services:  make([]serviceRecord, 0, len(s.Services)),
	}
	for _, b := range s.Breaks {
		r.Breaks = append(r.Breaks, breakRecord{From: b.From, To: b.To})
	}
	for _, svc := range s.Services {
		r.Services = append(r.Services, serviceRecord{
			Name:  svc.Name,
			Price: svc.Price,
			Time:  svc.DurationMinutes,
		})
	}
	return r
}
