package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/uzairqr/SalonBook-Service/internal/api/handlers"
	"github.com/uzairqr/SalonBook-Service/internal/api/middleware"
	bookingsService "github.com/uzairqr/SalonBook-Service/internal/service/bookings"
	"github.com/uzairqr/SalonBook-Service/internal/service/bookings/models"
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

// Handle GET /api/v1/users/me/bookings?status=<status>
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	deviceID := middleware.DeviceID(r.Context())

	req := &models.GetUserBookingsRequest{DeviceID: deviceID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /users/me/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /users/me/bookings - Failed for device=%s: %v", deviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/me/bookings - Returned %d bookings for device=%s", len(result.Bookings), deviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
