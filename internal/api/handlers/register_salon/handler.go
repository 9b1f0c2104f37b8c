package register_salon

import (
	"errors"
	"net/http"

	"github.com/uzairqr/SalonBook-Service/internal/api/handlers"
	salonsService "github.com/uzairqr/SalonBook-Service/internal/service/salons"
	"github.com/uzairqr/SalonBook-Service/internal/service/salons/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSalonExists        = "салон с таким именем уже зарегистрирован"
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

// Handle POST /api/v1/salons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterSalonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, salonsService.ErrSalonExists):
			h.logger.Warn("POST /salons - Salon name taken: %s", req.SalonName)
			handlers.RespondConflict(w, msgSalonExists)

		case errors.Is(err, salonsService.ErrInvalidSchedule):
			h.logger.Warn("POST /salons - Invalid schedule for salon=%s", req.SalonName)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, salonsService.ErrInvalidBreak):
			h.logger.Warn("POST /salons - Invalid break for salon=%s", req.SalonName)
			handlers.RespondBadRequest(w, msgInvalidBreak)

		case errors.Is(err, salonsService.ErrNoServices):
			h.logger.Warn("POST /salons - No valid services for salon=%s", req.SalonName)
			handlers.RespondBadRequest(w, msgNoServices)

		case errors.Is(err, salonsService.ErrInvalidInput):
			h.logger.Warn("POST /salons - Invalid input for salon=%s: %v", req.SalonName, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /salons - Failed to register salon=%s: %v", req.SalonName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salons - Salon registered: %s", result.SalonName)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
