package models

import (
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// CreateCarRequest запрос на добавление автомобиля в каталог
// Цены указываются за сутки в валюте, например 98.43
type CreateCarRequest struct {
	Brand     string  `json:"brand"`
	Model     string  `json:"model"`
	Stock     int     `json:"stock"`
	PeakPrice float64 `json:"peakPrice"`
	MidPrice  float64 `json:"midPrice"`
	OffPrice  float64 `json:"offPrice"`
}

// CarResponse ответ с данными автомобиля
type CarResponse struct {
	ID        string  `json:"id"`
	Brand     string  `json:"brand"`
	Model     string  `json:"model"`
	Stock     int     `json:"stock"`
	PeakPrice float64 `json:"peakPrice"`
	MidPrice  float64 `json:"midPrice"`
	OffPrice  float64 `json:"offPrice"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// CarListResponse ответ со списком автомобилей
type CarListResponse struct {
	Cars  []CarResponse `json:"cars"`
	Total int           `json:"total"`
}

// FromDomainCar конвертирует domain.Car в CarResponse
func FromDomainCar(c *domain.Car) *CarResponse {
	return &CarResponse{
		ID:        c.ID.String(),
		Brand:     c.Brand,
		Model:     c.Model,
		Stock:     c.Stock,
		PeakPrice: c.PeakPrice.Float64(),
		MidPrice:  c.MidPrice.Float64(),
		OffPrice:  c.OffPrice.Float64(),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainCarList конвертирует список автомобилей
func FromDomainCarList(cars []*domain.Car) *CarListResponse {
	result := &CarListResponse{
		Cars:  make([]CarResponse, 0, len(cars)),
		Total: len(cars),
	}
	for _, c := range cars {
		result.Cars = append(result.Cars, *FromDomainCar(c))
	}
	return result
}
