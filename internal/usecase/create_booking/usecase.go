package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/infra/lock"
	carRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/car"
	userRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/user"
)

// UseCase use case для создания бронирования
type UseCase struct {
	userRepo     UserRepository
	carRepo      CarRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	locker       Locker
	mode         domain.AvailabilityMode
	metrics      MetricsRecorder
	timeProvider TimeProvider
	newID        IDGenerator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	carRepo CarRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	locker Locker,
	mode domain.AvailabilityMode,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if !mode.IsValid() {
		mode = domain.AvailabilityEffective
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &UseCase{
		userRepo:     userRepo,
		carRepo:      carRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		locker:       locker,
		mode:         mode,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.New,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверки идут строго по порядку и прерываются на первой ошибке:
// пользователь, автомобиль, доступность, пересечение, права, цена, бронирование, остаток, сохранение.
// Шаги с 3 по 9 выполняются под блокировкой car/user и в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() { uc.metrics.BookingResult(resultOf(err)) }()

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: user=%s, car=%s, start=%s, end=%s",
		req.UserID, req.CarID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 2. Период аренды
	dateRange, err := domain.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid range: %v", err)
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}

	// 3. Блокируем автомобиль и пользователя до конца транзакции
	release, err := uc.locker.Acquire(ctx, lock.CarKey(req.CarID), lock.UserKey(req.UserID))
	if err != nil {
		if errors.Is(err, lock.ErrLockTimeout) {
			uc.logger.Warn("CreateBooking: car=%s or user=%s is busy", req.CarID, req.UserID)
			return nil, ErrBusy
		}
		uc.logger.Error("CreateBooking: failed to acquire lock: %v", err)
		return nil, fmt.Errorf("%w: failed to acquire lock: %w", ErrInternal, err)
	}
	defer release()

	var result *domain.Booking

	// 4. Выполняем проверки и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		result = nil

		// 4.1. Пользователь
		user, err := uc.userRepo.GetByID(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("CreateBooking: user id=%s not found", req.UserID)
				return ErrUserNotFound
			}
			uc.logger.Error("CreateBooking: failed to get user id=%s: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get user: %w", ErrInternal, err)
		}

		// 4.2. Автомобиль (внутри транзакции строка блокируется)
		car, err := uc.carRepo.GetByID(txCtx, req.CarID)
		if err != nil {
			if errors.Is(err, carRepo.ErrCarNotFound) {
				uc.logger.Warn("CreateBooking: car id=%s not found", req.CarID)
				return ErrCarNotFound
			}
			uc.logger.Error("CreateBooking: failed to get car id=%s: %v", req.CarID, err)
			return fmt.Errorf("%w: failed to get car: %w", ErrInternal, err)
		}

		// 4.3. Доступность автомобиля
		if err := uc.checkAvailability(txCtx, car, dateRange); err != nil {
			return err
		}

		// 4.4. У пользователя не должно быть пересекающихся бронирований (любой автомобиль)
		userBookings, err := uc.bookingRepo.FindByUserAndRangeOverlap(txCtx, user.ID, dateRange)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get user bookings: %v", err)
			return fmt.Errorf("%w: failed to get user bookings: %w", ErrInternal, err)
		}
		if domain.HasOverlap(userBookings, dateRange) {
			uc.logger.Warn("CreateBooking: user id=%s already has %d overlapping booking(s) for %s",
				user.ID, len(userBookings), dateRange)
			return ErrDuplicateBooking
		}

		// 4.5. Права должны действовать до последнего дня аренды
		if !user.CanDriveFor(dateRange) {
			uc.logger.Warn("CreateBooking: license of user id=%s expires %s, range %s",
				user.ID, user.License.ExpiryDate.Format(domain.DateFormat), dateRange)
			return ErrLicenseInvalid
		}

		// 4.6. Цена по сезонам
		quote := domain.PriceForRange(*car, dateRange)

		// 4.7. Бронирование со снимком пользователя и автомобиля
		booking, err := domain.NewBooking(uc.newID(), *user, *car, dateRange, quote.TotalPrice, uc.timeProvider.Now())
		if err != nil {
			if errors.Is(err, domain.ErrLicenseInvalid) {
				return ErrLicenseInvalid
			}
			return fmt.Errorf("%w: failed to build booking: %w", ErrInternal, err)
		}

		// 4.8. Уменьшаем остаток
		if err := car.DecrementStock(); err != nil {
			uc.logger.Warn("CreateBooking: car id=%s stock exhausted", car.ID)
			return ErrStockExhausted
		}
		car.UpdatedAt = booking.CreatedAt

		// 4.9. Сохраняем бронирование и автомобиль в одной транзакции
		if err := uc.bookingRepo.Save(txCtx, booking); err != nil {
			uc.logger.Error("CreateBooking: failed to save booking: %v", err)
			return fmt.Errorf("%w: failed to save booking: %w", ErrInternal, err)
		}
		if err := uc.carRepo.Save(txCtx, car); err != nil {
			uc.logger.Error("CreateBooking: failed to save car id=%s: %v", car.ID, err)
			return fmt.Errorf("%w: failed to save car: %w", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, total=%s", result.ID, result.TotalPrice)

	return &Response{
		ID:                result.ID,
		UserID:            result.User.ID,
		CarID:             result.Car.ID,
		StartDate:         result.Range.Start(),
		EndDate:           result.Range.End(),
		Days:              result.Range.Days(),
		CarBrand:          result.Car.Brand,
		CarModel:          result.Car.Model,
		TotalPrice:        result.TotalPrice,
		AverageDailyPrice: result.AverageDailyPrice(),
		CreatedAt:         result.CreatedAt,
	}, nil
}

// checkAvailability проверяет доступность автомобиля в выбранном режиме
func (uc *UseCase) checkAvailability(ctx context.Context, car *domain.Car, dateRange domain.DateRange) error {
	if uc.mode == domain.AvailabilityLegacy {
		if !car.IsAvailable() {
			uc.logger.Warn("CreateBooking: car id=%s has no stock", car.ID)
			return ErrCarUnavailable
		}
		return nil
	}

	carBookings, err := uc.bookingRepo.FindByCarAndRangeOverlap(ctx, car.ID, dateRange)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get car bookings: %v", err)
		return fmt.Errorf("%w: failed to get car bookings: %w", ErrInternal, err)
	}

	effective := domain.EffectiveStock(*car, dateRange, carBookings)
	if effective <= 0 {
		uc.logger.Warn("CreateBooking: car id=%s unavailable for %s (stock=%d, overlapping=%d)",
			car.ID, dateRange, car.Stock, len(carBookings))
		return ErrCarUnavailable
	}

	uc.logger.Info("CreateBooking: car id=%s available for %s, effective stock %d", car.ID, dateRange, effective)
	return nil
}

// resultOf метка результата для метрики bookings_total
func resultOf(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, ErrCarNotFound):
		return "car_not_found"
	case errors.Is(err, ErrCarUnavailable):
		return "car_unavailable"
	case errors.Is(err, ErrDuplicateBooking):
		return "duplicate_booking"
	case errors.Is(err, ErrLicenseInvalid):
		return "license_invalid"
	case errors.Is(err, ErrStockExhausted):
		return "stock_exhausted"
	case errors.Is(err, ErrBusy):
		return "busy"
	default:
		return "internal"
	}
}
