package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/infra/lock"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	Save(ctx context.Context, car *domain.Car) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindByCarAndRangeOverlap(ctx context.Context, carID uuid.UUID, dateRange domain.DateRange) ([]*domain.Booking, error)
	FindByUserAndRangeOverlap(ctx context.Context, userID uuid.UUID, dateRange domain.DateRange) ([]*domain.Booking, error)
	Save(ctx context.Context, booking *domain.Booking) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker блокировка по ключам автомобиля и пользователя
type Locker interface {
	Acquire(ctx context.Context, keys ...string) (lock.ReleaseFunc, error)
}

// MetricsRecorder учёт результатов бронирования
type MetricsRecorder interface {
	BookingResult(result string)
}

type noopMetrics struct{}

func (noopMetrics) BookingResult(string) {}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator генерирует ID нового бронирования
type IDGenerator func() uuid.UUID

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
