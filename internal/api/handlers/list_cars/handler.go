package list_cars

import (
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
)

type Handler struct {
	service CarService
	logger  Logger
}

func NewHandler(service CarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /cars - Failed to list cars: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cars - Retrieved %d cars", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
