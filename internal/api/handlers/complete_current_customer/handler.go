package complete_current_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/uzairqr/SalonBook-Service/internal/api/handlers"
	bookingsService "github.com/uzairqr/SalonBook-Service/internal/service/bookings"
)

const (
	msgNoCurrentCustomer = "нет активных бронирований к текущему моменту"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/salons/{salonName}/bookings/current/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonName := mux.Vars(r)["salonName"]

	result, err := h.service.CompleteCurrentCustomer(r.Context(), salonName)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrNoCurrentCustomer):
			h.logger.Info("POST /salons/%s/bookings/current/complete - No current customer", salonName)
			handlers.RespondNotFound(w, msgNoCurrentCustomer)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("POST /salons/%s/bookings/current/complete - Invalid input: %v", salonName, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /salons/%s/bookings/current/complete - Failed: %v", salonName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons/%s/bookings/current/complete - Booking %s completed", salonName, result.Code)
	handlers.RespondJSON(w, http.StatusOK, result)
}
