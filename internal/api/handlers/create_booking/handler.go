package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-CarRentalService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidID          = "некорректный ID пользователя или автомобиля"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "дата начала аренды позже даты окончания"
	msgUserNotFound       = "пользователь не найден"
	msgCarNotFound        = "автомобиль не найден"
	msgCarUnavailable     = "нет свободных автомобилей на выбранные даты"
	msgDuplicateBooking   = "у пользователя уже есть бронирование на пересекающиеся даты"
	msgLicenseInvalid     = "водительское удостоверение не действует до конца аренды"
	msgStockExhausted     = "автомобили этой модели закончились"
	msgBusy               = "автомобиль бронируется другим запросом, повторите попытку"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		var fe *fieldError
		if errors.As(err, &fe) && (fe.field == "userId" || fe.field == "carId") {
			handlers.RespondBadRequest(w, msgInvalidID)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%s", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrCarNotFound):
			h.logger.Warn("POST /bookings - Car not found: car_id=%s", req.CarID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, createBooking.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid range: %s..%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, createBooking.ErrCarUnavailable):
			h.logger.Warn("POST /bookings - Car unavailable: car_id=%s, range=%s..%s", req.CarID, req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgCarUnavailable)

		case errors.Is(err, createBooking.ErrDuplicateBooking):
			h.logger.Warn("POST /bookings - Duplicate booking: user_id=%s", req.UserID)
			handlers.RespondBadRequest(w, msgDuplicateBooking)

		case errors.Is(err, createBooking.ErrLicenseInvalid):
			h.logger.Warn("POST /bookings - License invalid: user_id=%s", req.UserID)
			handlers.RespondBadRequest(w, msgLicenseInvalid)

		case errors.Is(err, createBooking.ErrStockExhausted):
			h.logger.Warn("POST /bookings - Stock exhausted: car_id=%s", req.CarID)
			handlers.RespondBadRequest(w, msgStockExhausted)

		case errors.Is(err, createBooking.ErrBusy):
			h.logger.Warn("POST /bookings - Busy: user_id=%s, car_id=%s", req.UserID, req.CarID)
			handlers.RespondConflict(w, msgBusy)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, car_id=%s, error=%v",
				req.UserID, req.CarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s, car_id=%s",
		result.ID, req.UserID, req.CarID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
