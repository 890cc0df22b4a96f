package get_car_quotes

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	FindAll(ctx context.Context) ([]*domain.Car, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindByCarAndRangeOverlap(ctx context.Context, carID uuid.UUID, dateRange domain.DateRange) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
