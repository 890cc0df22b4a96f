package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    uuid.UUID
	CarID     uuid.UUID
	StartDate time.Time // Первый день аренды
	EndDate   time.Time // Последний день аренды (включительно)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CarID     uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Days      int

	// Снимок автомобиля
	CarBrand string
	CarModel string

	TotalPrice        domain.Money
	AverageDailyPrice domain.Money

	CreatedAt time.Time
}
