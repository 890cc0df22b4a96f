package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	createBooking "github.com/m04kA/SMC-CarRentalService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	UserID    string `json:"userId"`
	CarID     string `json:"carId"`
	StartDate string `json:"startDate"` // "2028-06-01"
	EndDate   string `json:"endDate"`   // "2028-06-05", включительно
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                string  `json:"id"`
	UserID            string  `json:"userId"`
	CarID             string  `json:"carId"`
	CarBrand          string  `json:"carBrand"`
	CarModel          string  `json:"carModel"`
	StartDate         string  `json:"startDate"`
	EndDate           string  `json:"endDate"`
	Days              int     `json:"days"`
	TotalPrice        float64 `json:"totalPrice"`
	AverageDailyPrice float64 `json:"averageDailyPrice"`
	CreatedAt         string  `json:"createdAt"`
}

type fieldError struct {
	field string
	err   error
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.field, e.err)
}

func (e *fieldError) Unwrap() error {
	return e.err
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	userID, err := uuid.Parse(r.UserID)
	if err != nil {
		return nil, &fieldError{field: "userId", err: err}
	}

	carID, err := uuid.Parse(r.CarID)
	if err != nil {
		return nil, &fieldError{field: "carId", err: err}
	}

	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, &fieldError{field: "startDate", err: err}
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, &fieldError{field: "endDate", err: err}
	}

	return &createBooking.Request{
		UserID:    userID,
		CarID:     carID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                resp.ID.String(),
		UserID:            resp.UserID.String(),
		CarID:             resp.CarID.String(),
		CarBrand:          resp.CarBrand,
		CarModel:          resp.CarModel,
		StartDate:         resp.StartDate.Format(domain.DateFormat),
		EndDate:           resp.EndDate.Format(domain.DateFormat),
		Days:              resp.Days,
		TotalPrice:        resp.TotalPrice.Float64(),
		AverageDailyPrice: resp.AverageDailyPrice.Float64(),
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
	}
}
