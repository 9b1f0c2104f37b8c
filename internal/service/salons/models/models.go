package models

import "github.com/uzairqr/SalonBook-Service/internal/domain"

// Request модели

// BreakInput перерыв в запросе регистрации или настроек
type BreakInput struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ServiceInput услуга в запросе регистрации или настроек
type ServiceInput struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"time"`
}

// RegisterSalonRequest запрос на регистрацию салона
type RegisterSalonRequest struct {
	OwnerName string         `json:"ownerName"`
	SalonName string         `json:"salonName"`
	Location  string         `json:"location"`
	OpenTime  string         `json:"openTime"`
	CloseTime string         `json:"closeTime"`
	SeatCount int            `json:"SeatCount"`
	Breaks    []BreakInput   `json:"breaks,omitempty"`
	Services  []ServiceInput `json:"services"`
	Images    []string       `json:"salonImages,omitempty"`
}

// UpdateSettingsRequest запрос на изменение настроек салона.
// Имя салона неизменяемо — оно идентифицирует записи бронирований
type UpdateSettingsRequest struct {
	SalonName string         `json:"salonName"`
	OwnerName string         `json:"ownerName"`
	Location  string         `json:"location"`
	OpenTime  string         `json:"openTime"`
	CloseTime string         `json:"closeTime"`
	SeatCount int            `json:"SeatCount"`
	Status    string         `json:"status"`
	Breaks    []BreakInput   `json:"breaks,omitempty"`
	Services  []ServiceInput `json:"services"`
	Images    []string       `json:"salonImages,omitempty"`
}

// Response модели

// BreakResponse перерыв салона
type BreakResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ServiceResponse услуга салона
type ServiceResponse struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"time"`
}

// SalonResponse ответ с данными салона
type SalonResponse struct {
	SalonName string            `json:"salonName"`
	OwnerName string            `json:"ownerName"`
	Location  string            `json:"location"`
	OpenTime  string            `json:"openTime"`
	CloseTime string            `json:"closeTime"`
	SeatCount int               `json:"SeatCount"`
	Status    string            `json:"status"`
	Breaks    []BreakResponse   `json:"breaks"`
	Services  []ServiceResponse `json:"services"`
	Images    []string          `json:"salonImages,omitempty"`

	// NextAvailable ориентировочное ближайшее время записи для витрины,
	// пустая строка при нечитаемом расписании
	NextAvailable string `json:"nextAvailable,omitempty"`
}

// SalonListResponse ответ со списком салонов
type SalonListResponse struct {
	Salons []SalonResponse `json:"salons"`
}

// Методы конвертации

// ToDomainSalon собирает domain модель из запроса регистрации
func (r *RegisterSalonRequest) ToDomainSalon() *domain.Salon {
	return &domain.Salon{
		Name:      r.SalonName,
		OwnerName: r.OwnerName,
		Location:  r.Location,
		OpenTime:  r.OpenTime,
		CloseTime: r.CloseTime,
		SeatCount: r.SeatCount,
		Status:    domain.SalonActive,
		Breaks:    toDomainBreaks(r.Breaks),
		Services:  toDomainServices(r.Services),
		Images:    r.Images,
	}
}

func toDomainBreaks(breaks []BreakInput) []domain.Break {
	result := make([]domain.Break, 0, len(breaks))
	for _, b := range breaks {
		result = append(result, domain.Break{From: b.From, To: b.To})
	}
	return result
}

func toDomainServices(services []ServiceInput) []domain.SalonService {
	result := make([]domain.SalonService, 0, len(services))
	for _, s := range services {
		result = append(result, domain.SalonService{
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return result
}

// FromDomainSalon конвертирует domain модель в DTO
func FromDomainSalon(s *domain.Salon) *SalonResponse {
	if s == nil {
		return nil
	}

	breaks := make([]BreakResponse, 0, len(s.Breaks))
	for _, b := range s.Breaks {
		breaks = append(breaks, BreakResponse{From: b.From, To: b.To})
	}

	services := make([]ServiceResponse, 0, len(s.Services))
	for _, svc := range s.Services {
		services = append(services, ServiceResponse{
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
		})
	}

	return &SalonResponse{
		SalonName: s.Name,
		OwnerName: s.OwnerName,
		Location:  s.Location,
		OpenTime:  s.OpenTime,
		CloseTime: s.CloseTime,
		SeatCount: s.SeatCount,
		Status:    string(s.Status),
		Breaks:    breaks,
		Services:  services,
		Images:    s.Images,
	}
}
