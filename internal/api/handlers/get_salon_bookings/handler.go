package get_salon_bookings

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

// Handle GET /api/v1/salons/{salonName}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonName := mux.Vars(r)["salonName"]

	result, err := h.service.GetSalonBookings(r.Context(), salonName)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /salons/%s/bookings - Invalid input: %v", salonName, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /salons/%s/bookings - Failed: %v", salonName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/%s/bookings - pending=%d, completed=%d, canceled=%d",
		salonName, result.PendingCount, result.CompletedCount, result.CanceledCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
