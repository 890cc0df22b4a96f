package get_car_quotes

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/api/handlers"
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	getCarQuotes "github.com/m04kA/SMC-CarRentalService/internal/usecase/get_car_quotes"
)

const (
	msgMissingDates  = "отсутствуют параметры startDate и endDate"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректное значение onlyAvailable"
	msgInvalidRange  = "дата начала аренды позже даты окончания"
)

type Handler struct {
	useCase GetCarQuotesUseCase
	logger  Logger
}

func NewHandler(useCase GetCarQuotesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars/quotes?startDate=2028-06-01&endDate=2028-06-05&onlyAvailable=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	startStr, endStr := query.Get("startDate"), query.Get("endDate")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /cars/quotes - Missing dates")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		h.logger.Warn("GET /cars/quotes - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	endDate, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		h.logger.Warn("GET /cars/quotes - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	onlyAvailable := false
	if raw := query.Get("onlyAvailable"); raw != "" {
		onlyAvailable, err = strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /cars/quotes - Invalid onlyAvailable: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getCarQuotes.Request{
		StartDate:     startDate,
		EndDate:       endDate,
		OnlyAvailable: onlyAvailable,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCarQuotes.ErrInvalidRange):
			h.logger.Warn("GET /cars/quotes - Invalid range: %s..%s", startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getCarQuotes.ErrInvalidInput):
			h.logger.Warn("GET /cars/quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /cars/quotes - Failed to get quotes: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cars/quotes - Quoted %d cars for %s..%s", len(result.Quotes), startStr, endStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
