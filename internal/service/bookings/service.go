package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/infra/lock"
	bookingRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/booking"
	carRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/car"
	"github.com/m04kA/SMC-CarRentalService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	carRepo     CarRepository
	txManager   TransactionManager
	locker      Locker
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	carRepo CarRepository,
	txManager TransactionManager,
	locker Locker,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		txManager:   txManager,
		locker:      locker,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает все бронирования пользователя
func (s *Service) GetUserBookings(ctx context.Context, userID uuid.UUID) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%s", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// GetCarBookings получает все бронирования автомобиля
func (s *Service) GetCarBookings(ctx context.Context, carID uuid.UUID) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.FindByCarID(ctx, carID)
	if err != nil {
		s.logger.Error("GetCarBookings: repository error for car=%s: %v", carID, err)
		return nil, fmt.Errorf("%w: GetCarBookings - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("GetCarBookings: fetched %d bookings for car=%s", len(bookings), carID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование: возвращает автомобиль в остаток и удаляет запись
// Повторная отмена того же бронирования возвращает ErrBookingNotFound
func (s *Service) Cancel(ctx context.Context, bookingID uuid.UUID) error {
	s.logger.Info("Cancel: cancelling booking id=%s", bookingID)

	// 1. Узнаём автомобиль, чтобы взять его блокировку
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - get booking: %w", ErrInternal, err)
	}

	release, err := s.locker.Acquire(ctx, lock.CarKey(booking.Car.ID))
	if err != nil {
		if errors.Is(err, lock.ErrLockTimeout) {
			s.logger.Warn("Cancel: car=%s is busy", booking.Car.ID)
			return ErrBusy
		}
		s.logger.Error("Cancel: failed to acquire lock: %v", err)
		return fmt.Errorf("%w: Cancel - acquire lock: %w", ErrInternal, err)
	}
	defer release()

	// 2. Возврат остатка и удаление в одной транзакции
	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Перечитываем под блокировкой: параллельная отмена могла успеть раньше
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%s already cancelled", bookingID)
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - get booking: %w", ErrInternal, err)
		}

		car, err := s.carRepo.GetByID(txCtx, booking.Car.ID)
		switch {
		case errors.Is(err, carRepo.ErrCarNotFound):
			// Автомобиль удалён из каталога: возвращать остаток некуда
			s.logger.Warn("Cancel: car id=%s of booking id=%s not found, stock not restored", booking.Car.ID, bookingID)
		case err != nil:
			s.logger.Error("Cancel: failed to get car id=%s: %v", booking.Car.ID, err)
			return fmt.Errorf("%w: Cancel - get car: %w", ErrInternal, err)
		default:
			car.IncrementStock()
			if err := s.carRepo.Save(txCtx, car); err != nil {
				s.logger.Error("Cancel: failed to save car id=%s: %v", car.ID, err)
				return fmt.Errorf("%w: Cancel - save car: %w", ErrInternal, err)
			}
		}

		if err := s.bookingRepo.Delete(txCtx, bookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: failed to delete booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - delete booking: %w", ErrInternal, err)
		}

		s.logger.Info("Cancel: booking id=%s cancelled, car id=%s returned to stock", bookingID, booking.Car.ID)
		return nil
	})
}
