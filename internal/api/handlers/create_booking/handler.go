package create_booking

import (
	"errors"
	"net/http"

	"github.com/uzairqr/SalonBook-Service/internal/api/handlers"
	"github.com/uzairqr/SalonBook-Service/internal/api/middleware"
	createBooking "github.com/uzairqr/SalonBook-Service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSalonNotFound      = "салон не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgSalonClosed        = "салон закрыт"
	msgSlotNoLongerAvail  = "слот больше недоступен, запросите свежий список"
	msgInvalidSchedule    = "расписание салона некорректно"
	msgInvalidInput       = "некорректные данные бронирования"
	msgStoreUnavailable   = "хранилище временно недоступно, повторите попытку"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	deviceID := middleware.DeviceID(r.Context())
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(deviceID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNoLongerAvailable):
			h.logger.Warn("POST /bookings - Slot no longer available: salon=%s, slot=%s", req.SalonName, req.TimeLabel)
			handlers.RespondConflict(w, msgSlotNoLongerAvail)

		case errors.Is(err, createBooking.ErrSalonNotFound):
			h.logger.Warn("POST /bookings - Salon not found: %s", req.SalonName)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: salon=%s, service=%s", req.SalonName, req.ServiceName)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrSalonClosed):
			h.logger.Info("POST /bookings - Salon closed: %s", req.SalonName)
			handlers.RespondConflict(w, msgSalonClosed)

		case errors.Is(err, createBooking.ErrInvalidSchedule):
			h.logger.Error("POST /bookings - Invalid schedule for salon=%s: %v", req.SalonName, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidSchedule)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrStoreUnavailable):
			h.logger.Error("POST /bookings - Store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: code=%s, salon=%s, slot=%s",
		result.Code, result.SalonName, result.TimeLabel)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
