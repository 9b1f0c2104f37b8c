package get_bookable_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/uzairqr/SalonBook-Service/internal/api/handlers"
	getBookableSlots "github.com/uzairqr/SalonBook-Service/internal/usecase/get_bookable_slots"
)

const (
	msgServiceRequired = "требуется параметр service"
	msgSalonNotFound   = "салон не найден"
	msgServiceNotFound = "услуга не найдена"
	msgSalonClosed     = "салон закрыт"
	msgInvalidSchedule = "расписание салона некорректно"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetBookableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonName}/bookable-slots?service=<name>
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonName := mux.Vars(r)["salonName"]
	serviceName := r.URL.Query().Get("service")
	if serviceName == "" {
		h.logger.Warn("GET /salons/%s/bookable-slots - Missing service parameter", salonName)
		handlers.RespondBadRequest(w, msgServiceRequired)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBookableSlots.Request{
		SalonName:   salonName,
		ServiceName: serviceName,
	})
	if err != nil {
		switch {
		case errors.Is(err, getBookableSlots.ErrSalonNotFound):
			h.logger.Warn("GET /salons/%s/bookable-slots - Salon not found", salonName)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, getBookableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /salons/%s/bookable-slots - Service %s not found", salonName, serviceName)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getBookableSlots.ErrSalonClosed):
			h.logger.Info("GET /salons/%s/bookable-slots - Salon closed", salonName)
			handlers.RespondConflict(w, msgSalonClosed)

		case errors.Is(err, getBookableSlots.ErrInvalidSchedule):
			h.logger.Error("GET /salons/%s/bookable-slots - Invalid schedule: %v", salonName, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidSchedule)

		case errors.Is(err, getBookableSlots.ErrInvalidInput):
			h.logger.Warn("GET /salons/%s/bookable-slots - Invalid input: %v", salonName, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /salons/%s/bookable-slots - Failed: %v", salonName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/%s/bookable-slots - Returned %d slots", salonName, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
