package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
	bookingsStorage "github.com/uzairqr/SalonBook-Service/internal/infra/storage/bookings"
	"github.com/uzairqr/SalonBook-Service/internal/service/bookings/models"
	"github.com/uzairqr/SalonBook-Service/pkg/timegrid"
)

const maxCommitRetries = 3

// Service сервис жизненного цикла бронирований: переводы статусов с панели
// салона и отмены со стороны клиента.
//
// Разрешены переходы pending -> completed и pending -> canceled; из
// completed переходов нет. Клиентская отмена удаляет запись целиком, отмена
// с панели сохраняет запись со статусом canceled
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// CompleteCurrentCustomer переводит в completed активное бронирование салона
// с наименьшим временем начала, не превышающим текущее
func (s *Service) CompleteCurrentCustomer(ctx context.Context, salonName string) (*models.BookingResponse, error) {
	return s.transitionCurrentCustomer(ctx, salonName, domain.StatusCompleted)
}

// CancelCurrentCustomer переводит в canceled активное бронирование салона
// с наименьшим временем начала, не превышающим текущее. Запись сохраняется
func (s *Service) CancelCurrentCustomer(ctx context.Context, salonName string) (*models.BookingResponse, error) {
	return s.transitionCurrentCustomer(ctx, salonName, domain.StatusCanceled)
}

func (s *Service) transitionCurrentCustomer(
	ctx context.Context,
	salonName string,
	target domain.BookingStatus,
) (*models.BookingResponse, error) {
	s.logger.Info("transitionCurrentCustomer: salon=%s, target=%s", salonName, target)

	if strings.TrimSpace(salonName) == "" {
		return nil, fmt.Errorf("%w: salon name is required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	nowMinutes := now.Hour()*60 + now.Minute()

	var transitioned *domain.Booking
	err := s.mutate(ctx, func(all []*domain.Booking) ([]*domain.Booking, error) {
		current := currentCustomerIndex(all, salonName, nowMinutes)
		if current < 0 {
			return nil, ErrNoCurrentCustomer
		}
		// Запись снимка не меняется по месту: при конфликте версий
		// повтор должен увидеть её в исходном статусе
		updated := *all[current]
		updated.Status = target
		all[current] = &updated
		transitioned = &updated
		return all, nil
	})
	if err != nil {
		if errors.Is(err, ErrNoCurrentCustomer) {
			s.logger.Info("transitionCurrentCustomer: no current customer for salon=%s", salonName)
		} else {
			s.logger.Error("transitionCurrentCustomer: salon=%s: %v", salonName, err)
		}
		return nil, err
	}

	s.logger.Info("transitionCurrentCustomer: booking %s -> %s", transitioned.Code, target)
	return models.FromDomainBooking(transitioned), nil
}

// GetBooking возвращает бронирование по уникальному коду
func (s *Service) GetBooking(ctx context.Context, code string) (*models.BookingResponse, error) {
	s.logger.Info("GetBooking: code=%s", code)

	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: booking code is required", ErrInvalidInput)
	}

	found, err := s.bookingRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, bookingsStorage.ErrBookingNotFound) {
			s.logger.Warn("GetBooking: booking %s not found", code)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetBooking: code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetBooking: %v", ErrStoreUnavailable, err)
	}

	return models.FromDomainBooking(found), nil
}

// CancelBooking удаляет бронирование по коду. Клиент может удалить только
// своё бронирование; пустой DeviceID означает отмену с панели салона.
// Повторная отмена по тому же коду возвращает ErrBookingNotFound
func (s *Service) CancelBooking(ctx context.Context, req *models.CancelBookingRequest) error {
	s.logger.Info("CancelBooking: code=%s", req.Code)

	if strings.TrimSpace(req.Code) == "" {
		return fmt.Errorf("%w: booking code is required", ErrInvalidInput)
	}

	err := s.mutate(ctx, func(all []*domain.Booking) ([]*domain.Booking, error) {
		index := -1
		for i, b := range all {
			if b.Code == req.Code {
				index = i
				break
			}
		}
		if index < 0 {
			return nil, ErrBookingNotFound
		}
		if req.DeviceID != "" && all[index].Customer.DeviceID != req.DeviceID {
			return nil, ErrAccessDenied
		}
		return append(all[:index], all[index+1:]...), nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			s.logger.Warn("CancelBooking: booking %s not found", req.Code)
		} else {
			s.logger.Error("CancelBooking: code=%s: %v", req.Code, err)
		}
		return err
	}

	s.logger.Info("CancelBooking: booking %s removed", req.Code)
	return nil
}

// CancelAllBookings удаляет все незавершённые бронирования салона.
// Завершённые записи сохраняются для истории
func (s *Service) CancelAllBookings(ctx context.Context, salonName string) (*models.CancelAllResponse, error) {
	s.logger.Info("CancelAllBookings: salon=%s", salonName)

	if strings.TrimSpace(salonName) == "" {
		return nil, fmt.Errorf("%w: salon name is required", ErrInvalidInput)
	}

	removed := 0
	err := s.mutate(ctx, func(all []*domain.Booking) ([]*domain.Booking, error) {
		kept := make([]*domain.Booking, 0, len(all))
		removed = 0
		for _, b := range all {
			if b.SalonName == salonName && b.Status != domain.StatusCompleted {
				removed++
				continue
			}
			kept = append(kept, b)
		}
		return kept, nil
	})
	if err != nil {
		s.logger.Error("CancelAllBookings: salon=%s: %v", salonName, err)
		return nil, err
	}

	s.logger.Info("CancelAllBookings: removed %d bookings for salon=%s", removed, salonName)
	return &models.CancelAllResponse{Removed: removed}, nil
}

// GetUserBookings возвращает бронирования клиента по идентификатору
// устройства, опционально фильтруя по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: device=%s", req.DeviceID)

	if strings.TrimSpace(req.DeviceID) == "" {
		return nil, fmt.Errorf("%w: device id is required", ErrInvalidInput)
	}

	all, _, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetUserBookings: device=%s: %v", req.DeviceID, err)
		return nil, fmt.Errorf("%w: GetUserBookings: %v", ErrStoreUnavailable, err)
	}

	filtered := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		if b.Customer.DeviceID != req.DeviceID {
			continue
		}
		if req.Status != nil && string(b.Status) != *req.Status {
			continue
		}
		filtered = append(filtered, b)
	}

	s.logger.Info("GetUserBookings: found %d bookings for device=%s", len(filtered), req.DeviceID)
	return &models.BookingListResponse{Bookings: models.FromDomainBookings(filtered)}, nil
}

// GetSalonBookings возвращает бронирования салона, сгруппированные по
// статусу, для панели владельца
func (s *Service) GetSalonBookings(ctx context.Context, salonName string) (*models.SalonBookingsResponse, error) {
	s.logger.Info("GetSalonBookings: salon=%s", salonName)

	if strings.TrimSpace(salonName) == "" {
		return nil, fmt.Errorf("%w: salon name is required", ErrInvalidInput)
	}

	all, _, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetSalonBookings: salon=%s: %v", salonName, err)
		return nil, fmt.Errorf("%w: GetSalonBookings: %v", ErrStoreUnavailable, err)
	}

	var pending, completed, canceled []*domain.Booking
	for _, b := range all {
		if b.SalonName != salonName {
			continue
		}
		switch b.Status {
		case domain.StatusPending:
			pending = append(pending, b)
		case domain.StatusCompleted:
			completed = append(completed, b)
		case domain.StatusCanceled:
			canceled = append(canceled, b)
		}
	}

	return &models.SalonBookingsResponse{
		Pending:        models.FromDomainBookings(pending),
		Completed:      models.FromDomainBookings(completed),
		Canceled:       models.FromDomainBookings(canceled),
		PendingCount:   len(pending),
		CompletedCount: len(completed),
		CanceledCount:  len(canceled),
	}, nil
}

// mutate выполняет read-modify-write над коллекцией с повтором на конфликте
// версий. fn получает свежий снимок и возвращает новое содержимое коллекции;
// доменные ошибки fn прекращают повторы
func (s *Service) mutate(ctx context.Context, fn func(all []*domain.Booking) ([]*domain.Booking, error)) error {
	for attempt := 0; attempt <= maxCommitRetries; attempt++ {
		all, version, err := s.bookingRepo.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		updated, err := fn(all)
		if err != nil {
			return err
		}

		if err := s.bookingRepo.ReplaceAll(ctx, updated, version); err != nil {
			if errors.Is(err, bookingsStorage.ErrVersionConflict) {
				s.logger.Warn("mutate: version conflict on attempt %d, retrying", attempt+1)
				continue
			}
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return nil
	}
	return fmt.Errorf("%w: commit retries exhausted", ErrStoreUnavailable)
}

// currentCustomerIndex находит активное бронирование салона с наименьшим
// временем начала, не превышающим nowMinutes. Токен-бронирования и записи
// с нечитаемой меткой пропускаются
func currentCustomerIndex(all []*domain.Booking, salonName string, nowMinutes int) int {
	best := -1
	bestStart := 0
	for i, b := range all {
		if b.SalonName != salonName || !b.IsPending() || b.IsToken() {
			continue
		}
		start, _, err := timegrid.ParseSlotLabel(b.TimeLabel)
		if err != nil || start > nowMinutes {
			continue
		}
		if best < 0 || start < bestStart {
			best = i
			bestStart = start
		}
	}
	return best
}
