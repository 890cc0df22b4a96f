package get_car_quotes

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Request модель запроса цен на период
type Request struct {
	StartDate     time.Time
	EndDate       time.Time
	OnlyAvailable bool // Только автомобили с эффективным остатком > 0
}

// Response модель ответа со списком автомобилей и ценами
type Response struct {
	StartDate time.Time
	EndDate   time.Time
	Days      int
	Quotes    []CarQuote
}

// CarQuote цена и доступность одного автомобиля на период
type CarQuote struct {
	CarID          uuid.UUID
	Brand          string
	Model          string
	Stock          int // Общий остаток
	EffectiveStock int // Остаток с учётом пересекающихся бронирований
	Available      bool

	TotalPrice        domain.Money
	AverageDailyPrice domain.Money
}
