package get_car

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/service/cars"
)

const (
	msgInvalidCarID = "некорректный ID автомобиля"
	msgNotFound     = "автомобиль не найден"
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

// Handle GET /api/v1/cars/{carId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID, err := handlers.PathUUID(r, "carId")
	if err != nil {
		h.logger.Warn("GET /cars/{id} - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	car, err := h.service.GetByID(r.Context(), carID)
	if err != nil {
		if errors.Is(err, cars.ErrCarNotFound) {
			h.logger.Warn("GET /cars/{id} - Car not found: car_id=%s", carID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /cars/{id} - Failed to get car: car_id=%s, error=%v", carID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, car)
}
