package cancel_all_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/uzairqr/SalonBook-Service/internal/api/handlers"
	bookingsService "github.com/uzairqr/SalonBook-Service/internal/service/bookings"
)

const msgInvalidInput = "некорректные параметры запроса"

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

// Handle DELETE /api/v1/salons/{salonName}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonName := mux.Vars(r)["salonName"]

	result, err := h.service.CancelAllBookings(r.Context(), salonName)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("DELETE /salons/%s/bookings - Invalid input: %v", salonName, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /salons/%s/bookings - Failed: %v", salonName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /salons/%s/bookings - Removed %d bookings", salonName, result.Removed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
