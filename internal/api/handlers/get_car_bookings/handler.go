package get_car_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
)

const (
	msgInvalidID = "некорректный ID автомобиля"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars/{carId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID, err := handlers.PathUUID(r, "carId")
	if err != nil {
		h.logger.Warn("GET /cars/{id}/bookings - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetCarBookings(r.Context(), carID)
	if err != nil {
		h.logger.Error("GET /cars/{id}/bookings - Failed to get bookings: car_id=%s, error=%v", carID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cars/{id}/bookings - Retrieved %d bookings: car_id=%s", result.Total, carID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
