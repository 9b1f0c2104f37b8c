package update_salon_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/uzairqr/SalonBook-Service/internal/api/handlers"
	salonsService "github.com/uzairqr/SalonBook-Service/internal/service/salons"
	"github.com/uzairqr/SalonBook-Service/internal/service/salons/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSalonNotFound      = "салон не найден"
	msgInvalidSchedule    = "время открытия должно быть раньше времени закрытия"
	msgInvalidBreak       = "некорректные границы перерыва"
	msgNoServices         = "нужна хотя бы одна валидная услуга"
	msgInvalidInput       = "некорректные данные салона"
)

type Handler struct {
	service SalonsService
	logger  Logger
}

func NewHandler(service SalonsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/salons/{salonName}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonName := mux.Vars(r)["salonName"]

	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salons/%s - Invalid request body: %v", salonName, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	// Имя из пути имеет приоритет: оно идентифицирует изменяемый салон
	req.SalonName = salonName

	result, err := h.service.UpdateSettings(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, salonsService.ErrSalonNotFound):
			h.logger.Warn("PUT /salons/%s - Salon not found", salonName)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, salonsService.ErrInvalidSchedule):
			h.logger.Warn("PUT /salons/%s - Invalid schedule", salonName)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, salonsService.ErrInvalidBreak):
			h.logger.Warn("PUT /salons/%s - Invalid break", salonName)
			handlers.RespondBadRequest(w, msgInvalidBreak)

		case errors.Is(err, salonsService.ErrNoServices):
			h.logger.Warn("PUT /salons/%s - No valid services", salonName)
			handlers.RespondBadRequest(w, msgNoServices)

		case errors.Is(err, salonsService.ErrInvalidInput):
			h.logger.Warn("PUT /salons/%s - Invalid input: %v", salonName, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /salons/%s - Failed to update settings: %v", salonName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/%s - Settings updated", salonName)
	handlers.RespondJSON(w, http.StatusOK, result)
}
