package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/uzairqr/SalonBook-Service/internal/api/handlers"
	"github.com/uzairqr/SalonBook-Service/internal/api/middleware"
	bookingsService "github.com/uzairqr/SalonBook-Service/internal/service/bookings"
	"github.com/uzairqr/SalonBook-Service/internal/service/bookings/models"
)

const (
	msgBookingNotFound = "бронирование не найдено или уже отменено"
	msgAccessDenied    = "можно отменить только своё бронирование"
	msgInvalidInput    = "некорректный код бронирования"
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

// Handle DELETE /api/v1/bookings/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	deviceID := middleware.DeviceID(r.Context())

	err := h.service.CancelBooking(r.Context(), &models.CancelBookingRequest{
		Code:     code,
		DeviceID: deviceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/%s - Booking not found", code)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/%s - Access denied for device=%s", code, deviceID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/%s - Invalid input: %v", code, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /bookings/%s - Failed to cancel: %v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/%s - Booking canceled by device=%s", code, deviceID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
