package walkin_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
	bookingsStorage "github.com/uzairqr/SalonBook-Service/internal/infra/storage/bookings"
	salonsStorage "github.com/uzairqr/SalonBook-Service/internal/infra/storage/salons"
	"github.com/uzairqr/SalonBook-Service/internal/schedule"
	"github.com/uzairqr/SalonBook-Service/internal/seatledger"
	"github.com/uzairqr/SalonBook-Service/pkg/bookingcode"
	"github.com/uzairqr/SalonBook-Service/pkg/timegrid"
)

// UseCase use case для walk-in бронирования с персонала.
//
// В отличие от клиентского пути окно не сканируется: проверяется единственный
// кандидат — округлённое "сейчас". Любой отказ возвращается с конкретной
// причиной, подбор следующего свободного времени остаётся за персоналом
type UseCase struct {
	bookingRepo  BookingRepository
	salonRepo    SalonRepository
	params       Params
	timeProvider TimeProvider
	codes        CodeGenerator
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
		codes:        realCodeGenerator{},
		logger:       logger,
	}
}

type realCodeGenerator struct{}

func (realCodeGenerator) NewBookingCode() string { return bookingcode.NewBookingCode() }

// Execute выполняет use case walk-in бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("WalkinBooking: salon=%s, duration=%d", req.SalonName, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("WalkinBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	nowMinutes := now.Hour()*60 + now.Minute()
	today := now.Format(domain.DateFormat)

	// 3. Получаем салон
	salon, err := uc.salonRepo.GetByName(ctx, req.SalonName)
	if err != nil {
		if errors.Is(err, salonsStorage.ErrSalonNotFound) {
			uc.logger.Warn("WalkinBooking: salon %q not found", req.SalonName)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("WalkinBooking: failed to get salon %q: %v", req.SalonName, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrStoreUnavailable, err)
	}

	// 4. Рабочее окно: до открытия и после закрытия — разные отказы
	open, close, err := schedule.Window(salon, uc.params.OpenGraceMinutes)
	if err != nil {
		uc.logger.Error("WalkinBooking: unparsable schedule for salon %q: %v", req.SalonName, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	if nowMinutes >= close {
		return nil, ErrSalonClosed
	}
	if nowMinutes < open {
		return nil, ErrNotYetOpen
	}

	// 5. Единственный кандидат — округлённое "сейчас"
	startMinutes := timegrid.Quantize(nowMinutes, uc.params.GridStepMinutes)

	if br := schedule.BreakContaining(salon, startMinutes); br != nil {
		uc.logger.Info("WalkinBooking: salon %q is on break %s-%s", req.SalonName, br.From, br.To)
		return nil, fmt.Errorf("%w: from %s to %s", ErrOnBreak, br.From, br.To)
	}

	// 6. Проверяем кандидата и дописываем бронирование условно по версии
	for attempt := 0; attempt <= uc.params.MaxCommitRetries; attempt++ {
		all, version, err := uc.bookingRepo.GetAll(ctx)
		if err != nil {
			uc.logger.Error("WalkinBooking: failed to get bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrStoreUnavailable, err)
		}
		active := seatledger.FilterSalonPending(all, salon.Name, today)

		occupied := seatledger.OccupiedSeatsAt(active, startMinutes, req.DurationMinutes, uc.params.BufferMinutes)
		if occupied >= salon.SeatCount {
			uc.logger.Info("WalkinBooking: slot full in salon %q at %s", req.SalonName, timegrid.ToLabel(startMinutes))
			return nil, ErrSlotFull
		}

		end := startMinutes + req.DurationMinutes
		if end > close || schedule.CrossesBreak(salon, startMinutes, end) ||
			!seatledger.FitsWithoutOverlap(active, startMinutes, end, uc.params.BufferMinutes) {
			uc.logger.Info("WalkinBooking: duration %d does not fit at %s in salon %q",
				req.DurationMinutes, timegrid.ToLabel(startMinutes), req.SalonName)
			return nil, ErrDoesNotFit
		}

		booking := &domain.Booking{
			SalonName:       salon.Name,
			OwnerName:       salon.OwnerName,
			Location:        salon.Location,
			TimeLabel:       timegrid.EncodeSlotLabel(startMinutes, occupied+1),
			DurationMinutes: req.DurationMinutes,
			Status:          domain.StatusPending,
			Customer: domain.Customer{
				DeviceID: WalkinDeviceID,
				Name:     WalkinCustomerName,
				Phone:    WalkinPhone,
			},
			Code: uc.codes.NewBookingCode(),
			Date: today,
		}

		if err := uc.bookingRepo.ReplaceAll(ctx, append(all, booking), version); err != nil {
			if errors.Is(err, bookingsStorage.ErrVersionConflict) {
				uc.logger.Warn("WalkinBooking: version conflict on attempt %d, retrying", attempt+1)
				continue
			}
			uc.logger.Error("WalkinBooking: failed to store booking: %v", err)
			return nil, fmt.Errorf("%w: failed to store booking: %v", ErrStoreUnavailable, err)
		}

		uc.logger.Info("WalkinBooking: created booking %s at %s for salon=%s", booking.Code, booking.TimeLabel, salon.Name)
		return &Response{
			Code:            booking.Code,
			SalonName:       booking.SalonName,
			TimeLabel:       booking.TimeLabel,
			StartTime:       timegrid.ToLabel(startMinutes),
			DurationMinutes: booking.DurationMinutes,
			Date:            booking.Date,
			Status:          booking.Status,
		}, nil
	}

	uc.logger.Error("WalkinBooking: retries exhausted for salon %q", salon.Name)
	return nil, fmt.Errorf("%w: commit retries exhausted", ErrStoreUnavailable)
}

// validateRequest проверяет корректность запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(req.SalonName) == "" {
		return fmt.Errorf("%w: salon name is required", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return nil
}
