package salons

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
	salonsStorage "github.com/uzairqr/SalonBook-Service/internal/infra/storage/salons"
	"github.com/uzairqr/SalonBook-Service/internal/schedule"
	"github.com/uzairqr/SalonBook-Service/internal/service/salons/models"
	"github.com/uzairqr/SalonBook-Service/pkg/timegrid"
)

const maxCommitRetries = 3

// Service сервис реестра салонов: витрина для клиентов, регистрация и
// настройки для владельцев.
//
// Инварианты расписания (открытие раньше закрытия, перерывы внутри рабочих
// часов) проверяются здесь, на границе изменения салона: движок расчёта
// слотов принимает их как предусловие
type Service struct {
	salonRepo      SalonRepository
	listingLeadMin int
	logger         Logger
}

// NewService создает новый экземпляр сервиса салонов
func NewService(salonRepo SalonRepository, listingLeadMinutes int, logger Logger) *Service {
	return &Service{
		salonRepo:      salonRepo,
		listingLeadMin: listingLeadMinutes,
		logger:         logger,
	}
}

// List возвращает активные салоны для витрины с ориентировочным ближайшим
// временем записи
func (s *Service) List(ctx context.Context) (*models.SalonListResponse, error) {
	s.logger.Info("List: fetching active salons")

	all, _, err := s.salonRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List: %v", ErrStoreUnavailable, err)
	}

	result := make([]models.SalonResponse, 0, len(all))
	for _, salon := range all {
		if !salon.IsActive() {
			continue
		}
		resp := models.FromDomainSalon(salon)
		if label, err := schedule.NextAvailableLabel(salon, s.listingLeadMin); err == nil {
			resp.NextAvailable = label
		}
		result = append(result, *resp)
	}

	s.logger.Info("List: returning %d active salons", len(result))
	return &models.SalonListResponse{Salons: result}, nil
}

// GetByName возвращает салон по имени
func (s *Service) GetByName(ctx context.Context, name string) (*models.SalonResponse, error) {
	s.logger.Info("GetByName: salon=%s", name)

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: salon name is required", ErrInvalidInput)
	}

	salon, err := s.salonRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, salonsStorage.ErrSalonNotFound) {
			s.logger.Warn("GetByName: salon %q not found", name)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetByName: salon=%s: %v", name, err)
		return nil, fmt.Errorf("%w: GetByName: %v", ErrStoreUnavailable, err)
	}

	return models.FromDomainSalon(salon), nil
}

// Register регистрирует новый салон под свободным именем
func (s *Service) Register(ctx context.Context, req *models.RegisterSalonRequest) (*models.SalonResponse, error) {
	s.logger.Info("Register: salon=%s, owner=%s", req.SalonName, req.OwnerName)

	salon := req.ToDomainSalon()
	if err := validateSalon(salon); err != nil {
		s.logger.Warn("Register: validation failed for salon=%s: %v", req.SalonName, err)
		return nil, err
	}

	for attempt := 0; attempt <= maxCommitRetries; attempt++ {
		all, version, err := s.salonRepo.GetAll(ctx)
		if err != nil {
			s.logger.Error("Register: repository error: %v", err)
			return nil, fmt.Errorf("%w: Register: %v", ErrStoreUnavailable, err)
		}

		for _, existing := range all {
			if existing.Name == salon.Name {
				s.logger.Warn("Register: salon name %q already taken", salon.Name)
				return nil, ErrSalonExists
			}
		}

		if err := s.salonRepo.ReplaceAll(ctx, append(all, salon), version); err != nil {
			if errors.Is(err, salonsStorage.ErrVersionConflict) {
				s.logger.Warn("Register: version conflict on attempt %d, retrying", attempt+1)
				continue
			}
			s.logger.Error("Register: failed to store salon=%s: %v", salon.Name, err)
			return nil, fmt.Errorf("%w: Register: %v", ErrStoreUnavailable, err)
		}

		s.logger.Info("Register: salon %q registered", salon.Name)
		return models.FromDomainSalon(salon), nil
	}

	return nil, fmt.Errorf("%w: commit retries exhausted", ErrStoreUnavailable)
}

// UpdateSettings заменяет настройки существующего салона. Имя салона
// неизменяемо: по нему привязаны записи бронирований
func (s *Service) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SalonResponse, error) {
	s.logger.Info("UpdateSettings: salon=%s", req.SalonName)

	updated := &domain.Salon{
		Name:      req.SalonName,
		OwnerName: req.OwnerName,
		Location:  req.Location,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		SeatCount: req.SeatCount,
		Status:    domain.SalonStatus(req.Status),
		Breaks:    breaksFromInput(req.Breaks),
		Services:  servicesFromInput(req.Services),
		Images:    req.Images,
	}
	if updated.Status != domain.SalonActive && updated.Status != domain.SalonInactive {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}
	if err := validateSalon(updated); err != nil {
		s.logger.Warn("UpdateSettings: validation failed for salon=%s: %v", req.SalonName, err)
		return nil, err
	}

	for attempt := 0; attempt <= maxCommitRetries; attempt++ {
		all, version, err := s.salonRepo.GetAll(ctx)
		if err != nil {
			s.logger.Error("UpdateSettings: repository error: %v", err)
			return nil, fmt.Errorf("%w: UpdateSettings: %v", ErrStoreUnavailable, err)
		}

		index := -1
		for i, existing := range all {
			if existing.Name == updated.Name {
				index = i
				break
			}
		}
		if index < 0 {
			s.logger.Warn("UpdateSettings: salon %q not found", updated.Name)
			return nil, ErrSalonNotFound
		}
		all[index] = updated

		if err := s.salonRepo.ReplaceAll(ctx, all, version); err != nil {
			if errors.Is(err, salonsStorage.ErrVersionConflict) {
				s.logger.Warn("UpdateSettings: version conflict on attempt %d, retrying", attempt+1)
				continue
			}
			s.logger.Error("UpdateSettings: failed to store salon=%s: %v", updated.Name, err)
			return nil, fmt.Errorf("%w: UpdateSettings: %v", ErrStoreUnavailable, err)
		}

		s.logger.Info("UpdateSettings: salon %q updated", updated.Name)
		return models.FromDomainSalon(updated), nil
	}

	return nil, fmt.Errorf("%w: commit retries exhausted", ErrStoreUnavailable)
}

// validateSalon проверяет инварианты салона перед записью
func validateSalon(salon *domain.Salon) error {
	if strings.TrimSpace(salon.Name) == "" {
		return fmt.Errorf("%w: salon name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(salon.OwnerName) == "" {
		return fmt.Errorf("%w: owner name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(salon.Location) == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if salon.SeatCount <= 0 {
		return fmt.Errorf("%w: seat count must be positive", ErrInvalidInput)
	}

	open, err := timegrid.ToMinutes(salon.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	close, err := timegrid.ToMinutes(salon.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	if open >= close {
		return ErrInvalidSchedule
	}

	for _, b := range salon.Breaks {
		from, err := timegrid.ToMinutes(b.From)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBreak, err)
		}
		to, err := timegrid.ToMinutes(b.To)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBreak, err)
		}
		if from >= to {
			return fmt.Errorf("%w: %s-%s", ErrInvalidBreak, b.From, b.To)
		}
		if from < open || to > close {
			return fmt.Errorf("%w: break %s-%s is outside working hours", ErrInvalidBreak, b.From, b.To)
		}
	}

	valid := 0
	for _, svc := range salon.Services {
		if strings.TrimSpace(svc.Name) != "" && svc.Price > 0 && svc.DurationMinutes > 0 {
			valid++
		}
	}
	if valid == 0 {
		return ErrNoServices
	}

	return nil
}

func breaksFromInput(breaks []models.BreakInput) []domain.Break {
	result := make([]domain.Break, 0, len(breaks))
	for _, b := range breaks {
		result = append(result, domain.Break{From: b.From, To: b.To})
	}
	return result
}

func servicesFromInput(services []models.ServiceInput) []domain.SalonService {
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
