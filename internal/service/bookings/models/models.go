package models

import (
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	CarID     string `json:"carId"`
	CarBrand  string `json:"carBrand"`
	CarModel  string `json:"carModel"`
	StartDate string `json:"startDate"` // "2028-06-01"
	EndDate   string `json:"endDate"`   // "2028-06-05", включительно
	Days      int    `json:"days"`

	TotalPrice        float64 `json:"totalPrice"`
	AverageDailyPrice float64 `json:"averageDailyPrice"`

	CreatedAt string `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                b.ID.String(),
		UserID:            b.User.ID.String(),
		UserName:          b.User.Name,
		CarID:             b.Car.ID.String(),
		CarBrand:          b.Car.Brand,
		CarModel:          b.Car.Model,
		StartDate:         b.Range.Start().Format(domain.DateFormat),
		EndDate:           b.Range.End().Format(domain.DateFormat),
		Days:              b.Range.Days(),
		TotalPrice:        b.TotalPrice.Float64(),
		AverageDailyPrice: b.AverageDailyPrice().Float64(),
		CreatedAt:         b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, *FromDomainBooking(b))
	}
	return result
}
