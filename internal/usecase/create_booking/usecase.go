package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
	bookingsStorage "github.com/uzairqr/SalonBook-Service/internal/infra/storage/bookings"
	salonsStorage "github.com/uzairqr/SalonBook-Service/internal/infra/storage/salons"
	"github.com/uzairqr/SalonBook-Service/internal/schedule"
	"github.com/uzairqr/SalonBook-Service/internal/seatledger"
	"github.com/uzairqr/SalonBook-Service/pkg/bookingcode"
	"github.com/uzairqr/SalonBook-Service/pkg/timegrid"
)

// UseCase use case для создания бронирования.
//
// Между показом слотов и записью проходит время, поэтому выбранный слот
// перепроверяется на свежем снимке коллекции тем же предикатом, которым он
// был сформирован. Запись условна по версии коллекции: при проигранной гонке
// снимок перечитывается и проверка повторяется
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
func (realCodeGenerator) NewToken() string       { return bookingcode.NewToken() }

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: salon=%s, service=%s, slot=%s", req.SalonName, req.ServiceName, req.TimeLabel)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
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
			uc.logger.Warn("CreateBooking: salon %q not found", req.SalonName)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateBooking: failed to get salon %q: %v", req.SalonName, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrStoreUnavailable, err)
	}

	// 4. Получаем услугу
	service := salon.FindService(req.ServiceName)
	if service == nil {
		uc.logger.Warn("CreateBooking: service %q not found in salon %q", req.ServiceName, req.SalonName)
		return nil, ErrServiceNotFound
	}

	// 5. Рабочее окно
	open, close, err := schedule.Window(salon, uc.params.OpenGraceMinutes)
	if err != nil {
		uc.logger.Error("CreateBooking: unparsable schedule for salon %q: %v", req.SalonName, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	if nowMinutes >= close {
		uc.logger.Info("CreateBooking: salon %q is closed (now=%d, close=%d)", req.SalonName, nowMinutes, close)
		return nil, ErrSalonClosed
	}

	// 6. Формируем бронирование и записываем его условно по версии коллекции
	if req.TimeLabel == domain.TokenTimeLabel {
		return uc.commitToken(ctx, req, salon, service, today)
	}

	startMinutes, _, err := timegrid.ParseSlotLabel(req.TimeLabel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return uc.commitSlot(ctx, req, salon, service, startMinutes, nowMinutes, open, close, today)
}

// commitSlot перепроверяет слот на свежем снимке и дописывает бронирование.
// Каждая попытка читает коллекцию заново: снимок предыдущей попытки после
// конфликта версий уже недействителен
func (uc *UseCase) commitSlot(
	ctx context.Context,
	req *Request,
	salon *domain.Salon,
	service *domain.SalonService,
	startMinutes, nowMinutes, open, close int,
	today string,
) (*Response, error) {
	for attempt := 0; attempt <= uc.params.MaxCommitRetries; attempt++ {
		all, version, err := uc.bookingRepo.GetAll(ctx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrStoreUnavailable, err)
		}
		active := seatledger.FilterSalonPending(all, salon.Name, today)

		seatOrdinal, err := uc.revalidateSlot(salon, active, startMinutes, service.DurationMinutes, nowMinutes, open, close)
		if err != nil {
			uc.logger.Info("CreateBooking: slot %q rejected on revalidation: %v", req.TimeLabel, err)
			return nil, err
		}

		booking := &domain.Booking{
			SalonName:       salon.Name,
			OwnerName:       salon.OwnerName,
			Location:        salon.Location,
			Service:         service.Name,
			TimeLabel:       timegrid.EncodeSlotLabel(startMinutes, seatOrdinal),
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			Customer: domain.Customer{
				DeviceID: req.DeviceID,
				Name:     req.CustomerName,
				Phone:    req.CustomerPhone,
			},
			Code: uc.codes.NewBookingCode(),
			Date: today,
		}

		if err := uc.bookingRepo.ReplaceAll(ctx, append(all, booking), version); err != nil {
			if errors.Is(err, bookingsStorage.ErrVersionConflict) {
				uc.logger.Warn("CreateBooking: version conflict on attempt %d, retrying", attempt+1)
				continue
			}
			uc.logger.Error("CreateBooking: failed to store booking: %v", err)
			return nil, fmt.Errorf("%w: failed to store booking: %v", ErrStoreUnavailable, err)
		}

		uc.logger.Info("CreateBooking: created booking %s at %s for salon=%s", booking.Code, booking.TimeLabel, salon.Name)
		return &Response{
			Code:            booking.Code,
			SalonName:       booking.SalonName,
			ServiceName:     booking.Service,
			TimeLabel:       booking.TimeLabel,
			DurationMinutes: booking.DurationMinutes,
			Date:            booking.Date,
			Status:          booking.Status,
		}, nil
	}

	uc.logger.Error("CreateBooking: retries exhausted for slot %q in salon %q", req.TimeLabel, salon.Name)
	return nil, fmt.Errorf("%w: commit retries exhausted", ErrStoreUnavailable)
}

// commitToken дописывает токен-бронирование живой очереди. Слотовая проверка
// не выполняется: токен не занимает место в сетке
func (uc *UseCase) commitToken(
	ctx context.Context,
	req *Request,
	salon *domain.Salon,
	service *domain.SalonService,
	today string,
) (*Response, error) {
	for attempt := 0; attempt <= uc.params.MaxCommitRetries; attempt++ {
		all, version, err := uc.bookingRepo.GetAll(ctx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrStoreUnavailable, err)
		}

		token := uc.codes.NewToken()
		booking := &domain.Booking{
			SalonName:       salon.Name,
			OwnerName:       salon.OwnerName,
			Location:        salon.Location,
			Service:         service.Name,
			TimeLabel:       domain.TokenTimeLabel,
			DurationMinutes: service.DurationMinutes,
			Token:           &token,
			Status:          domain.StatusPending,
			Customer: domain.Customer{
				DeviceID: req.DeviceID,
				Name:     req.CustomerName,
				Phone:    req.CustomerPhone,
			},
			Code: uc.codes.NewBookingCode(),
			Date: today,
		}

		if err := uc.bookingRepo.ReplaceAll(ctx, append(all, booking), version); err != nil {
			if errors.Is(err, bookingsStorage.ErrVersionConflict) {
				uc.logger.Warn("CreateBooking: version conflict on attempt %d, retrying", attempt+1)
				continue
			}
			uc.logger.Error("CreateBooking: failed to store token booking: %v", err)
			return nil, fmt.Errorf("%w: failed to store booking: %v", ErrStoreUnavailable, err)
		}

		uc.logger.Info("CreateBooking: created token booking %s for salon=%s", booking.Code, salon.Name)
		return &Response{
			Code:            booking.Code,
			Token:           booking.Token,
			SalonName:       booking.SalonName,
			ServiceName:     booking.Service,
			TimeLabel:       booking.TimeLabel,
			DurationMinutes: booking.DurationMinutes,
			Date:            booking.Date,
			Status:          booking.Status,
		}, nil
	}

	uc.logger.Error("CreateBooking: retries exhausted for token booking in salon %q", salon.Name)
	return nil, fmt.Errorf("%w: commit retries exhausted", ErrStoreUnavailable)
}

// revalidateSlot повторяет предикат планировщика для одного кандидата и
// возвращает порядковый номер места, под которым бронирование будет сохранено.
// Номер назначается здесь, а не берётся из запроса: между показом и записью
// занятость могла измениться
func (uc *UseCase) revalidateSlot(
	salon *domain.Salon,
	active []*domain.Booking,
	startMinutes, durationMinutes, nowMinutes, open, close int,
) (int, error) {
	if startMinutes < open || startMinutes < nowMinutes {
		return 0, fmt.Errorf("%w: slot start is in the past", ErrSlotNoLongerAvailable)
	}
	if schedule.IsInBreak(salon, startMinutes) {
		return 0, fmt.Errorf("%w: slot start falls into a break", ErrSlotNoLongerAvailable)
	}

	occupied := seatledger.OccupiedSeatsAt(active, startMinutes, durationMinutes, uc.params.BufferMinutes)
	if occupied >= salon.SeatCount {
		return 0, fmt.Errorf("%w: all seats are occupied", ErrSlotNoLongerAvailable)
	}

	end := startMinutes + durationMinutes
	if end > close {
		return 0, fmt.Errorf("%w: service does not finish before closing", ErrSlotNoLongerAvailable)
	}
	if schedule.CrossesBreak(salon, startMinutes, end) {
		return 0, fmt.Errorf("%w: service interval crosses a break", ErrSlotNoLongerAvailable)
	}
	if !seatledger.FitsWithoutOverlap(active, startMinutes, end, uc.params.BufferMinutes) {
		return 0, fmt.Errorf("%w: service interval overlaps an existing booking", ErrSlotNoLongerAvailable)
	}

	return occupied + 1, nil
}
