package get_bookable_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
	salonRepo "github.com/uzairqr/SalonBook-Service/internal/infra/storage/salons"
	"github.com/uzairqr/SalonBook-Service/internal/schedule"
	"github.com/uzairqr/SalonBook-Service/internal/seatledger"
)

// UseCase use case для получения доступных слотов клиентского пути
type UseCase struct {
	bookingRepo  BookingRepository
	salonRepo    SalonRepository
	params       Params
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	salonRepo SalonRepository,
	params Params,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		salonRepo:    salonRepo,
		params:       params,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookableSlots: salon=%s, service=%s", req.SalonName, req.ServiceName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	nowMinutes := now.Hour()*60 + now.Minute()
	today := now.Format(domain.DateFormat)

	// 3. Получаем салон
	salon, err := uc.salonRepo.GetByName(ctx, req.SalonName)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("GetBookableSlots: salon %q not found", req.SalonName)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetBookableSlots: failed to get salon %q: %v", req.SalonName, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrStoreUnavailable, err)
	}

	// 4. Получаем услугу — она определяет длительность кандидата
	service := salon.FindService(req.ServiceName)
	if service == nil {
		uc.logger.Warn("GetBookableSlots: service %q not found in salon %q", req.ServiceName, req.SalonName)
		return nil, ErrServiceNotFound
	}

	// 5. Рабочее окно с отступом после открытия
	open, close, err := schedule.Window(salon, uc.params.OpenGraceMinutes)
	if err != nil {
		uc.logger.Error("GetBookableSlots: unparsable schedule for salon %q: %v", req.SalonName, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	// 6. Салон уже закрыт — единственный сентинел-результат
	if nowMinutes >= close {
		uc.logger.Info("GetBookableSlots: salon %q is closed (now=%d, close=%d)", req.SalonName, nowMinutes, close)
		return nil, ErrSalonClosed
	}

	// 7. Снимок бронирований на сегодня для этого салона
	allBookings, _, err := uc.bookingRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetBookableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrStoreUnavailable, err)
	}
	bookings := seatledger.FilterSalonPending(allBookings, salon.Name, today)

	// 8. Сканируем окно
	slots := scanSlots(salon, bookings, open, close, nowMinutes, service.DurationMinutes, uc.params)

	uc.logger.Info("GetBookableSlots: generated %d slots for salon=%s, service=%s",
		len(slots), req.SalonName, req.ServiceName)

	return &Response{
		SalonName:       salon.Name,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		SeatCount:       salon.SeatCount,
		Slots:           slots,
	}, nil
}
