package walkin_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/uzairqr/SalonBook-Service/internal/api/handlers"
	walkinBooking "github.com/uzairqr/SalonBook-Service/internal/usecase/walkin_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSalonNotFound      = "салон не найден"
	msgSalonClosed        = "салон закрыт"
	msgNotYetOpen         = "салон ещё не открылся"
	msgSlotFull           = "все места заняты"
	msgDoesNotFit         = "услуга не помещается, выберите меньшую длительность"
	msgInvalidSchedule    = "расписание салона некорректно"
	msgInvalidInput       = "некорректные данные бронирования"
	msgStoreUnavailable   = "хранилище временно недоступно, повторите попытку"
)

type Handler struct {
	useCase WalkinBookingUseCase
	logger  Logger
}

func NewHandler(useCase WalkinBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/salons/{salonName}/walkin-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonName := mux.Vars(r)["salonName"]

	var req WalkinBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons/%s/walkin-bookings - Invalid request body: %v", salonName, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &walkinBooking.Request{
		SalonName:       salonName,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, walkinBooking.ErrSalonNotFound):
			h.logger.Warn("POST /salons/%s/walkin-bookings - Salon not found", salonName)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, walkinBooking.ErrSalonClosed):
			h.logger.Info("POST /salons/%s/walkin-bookings - Salon closed", salonName)
			handlers.RespondConflict(w, msgSalonClosed)

		case errors.Is(err, walkinBooking.ErrNotYetOpen):
			h.logger.Info("POST /salons/%s/walkin-bookings - Not yet open", salonName)
			handlers.RespondConflict(w, msgNotYetOpen)

		case errors.Is(err, walkinBooking.ErrOnBreak):
			// Границы перерыва доносим до пользователя как есть
			h.logger.Info("POST /salons/%s/walkin-bookings - On break: %v", salonName, err)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, walkinBooking.ErrSlotFull):
			h.logger.Info("POST /salons/%s/walkin-bookings - Slot full", salonName)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, walkinBooking.ErrDoesNotFit):
			h.logger.Info("POST /salons/%s/walkin-bookings - Duration does not fit", salonName)
			handlers.RespondConflict(w, msgDoesNotFit)

		case errors.Is(err, walkinBooking.ErrInvalidSchedule):
			h.logger.Error("POST /salons/%s/walkin-bookings - Invalid schedule: %v", salonName, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidSchedule)

		case errors.Is(err, walkinBooking.ErrInvalidInput):
			h.logger.Warn("POST /salons/%s/walkin-bookings - Invalid input: %v", salonName, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, walkinBooking.ErrStoreUnavailable):
			h.logger.Error("POST /salons/%s/walkin-bookings - Store unavailable: %v", salonName, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("POST /salons/%s/walkin-bookings - Failed: %v", salonName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/%s/walkin-bookings - Booking created: code=%s, slot=%s",
		salonName, result.Code, result.TimeLabel)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
