package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/infra/lock"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error)
	FindByCarID(ctx context.Context, carID uuid.UUID) ([]*domain.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	Save(ctx context.Context, car *domain.Car) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker блокировка по ключу автомобиля
type Locker interface {
	Acquire(ctx context.Context, keys ...string) (lock.ReleaseFunc, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
