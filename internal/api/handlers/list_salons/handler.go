package list_salons

import (
	"net/http"

	"github.com/uzairqr/SalonBook-Service/internal/api/handlers"
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

// Handle GET /api/v1/salons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /salons - Failed to list salons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salons - Returned %d salons", len(result.Salons))
	handlers.RespondJSON(w, http.StatusOK, result)
}
