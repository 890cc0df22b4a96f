package cars

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	FindAll(ctx context.Context) ([]*domain.Car, error)
	Save(ctx context.Context, car *domain.Car) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
