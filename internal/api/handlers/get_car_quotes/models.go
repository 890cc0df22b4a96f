package get_car_quotes

import (
	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	getCarQuotes "github.com/m04kA/SMC-CarRentalService/internal/usecase/get_car_quotes"
)

// CarQuotesResponse HTTP response model
type CarQuotesResponse struct {
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Days      int             `json:"days"`
	Quotes    []CarQuoteModel `json:"quotes"`
}

// CarQuoteModel цена и доступность автомобиля на период
type CarQuoteModel struct {
	CarID             string  `json:"carId"`
	Brand             string  `json:"brand"`
	Model             string  `json:"model"`
	Stock             int     `json:"stock"`
	EffectiveStock    int     `json:"effectiveStock"`
	Available         bool    `json:"available"`
	TotalPrice        float64 `json:"totalPrice"`
	AverageDailyPrice float64 `json:"averageDailyPrice"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCarQuotes.Response) *CarQuotesResponse {
	quotes := make([]CarQuoteModel, 0, len(resp.Quotes))
	for _, q := range resp.Quotes {
		quotes = append(quotes, CarQuoteModel{
			CarID:             q.CarID.String(),
			Brand:             q.Brand,
			Model:             q.Model,
			Stock:             q.Stock,
			EffectiveStock:    q.EffectiveStock,
			Available:         q.Available,
			TotalPrice:        q.TotalPrice.Float64(),
			AverageDailyPrice: q.AverageDailyPrice.Float64(),
		})
	}

	return &CarQuotesResponse{
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Days:      resp.Days,
		Quotes:    quotes,
	}
}
