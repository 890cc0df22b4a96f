package get_car_quotes

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// UseCase use case для расчёта цен и доступности автомобилей на период
type UseCase struct {
	carRepo     CarRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(carRepo CarRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		carRepo:     carRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute считает для каждого автомобиля эффективный остаток и цену на период
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCarQuotes: validation failed: %v", err)
		return nil, err
	}

	dateRange, err := domain.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		uc.logger.Warn("GetCarQuotes: invalid range: %v", err)
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}

	uc.logger.Info("GetCarQuotes: range=%s, onlyAvailable=%t", dateRange, req.OnlyAvailable)

	// 2. Получаем все автомобили
	cars, err := uc.carRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Error("GetCarQuotes: failed to get cars: %v", err)
		return nil, fmt.Errorf("%w: failed to get cars: %w", ErrInternal, err)
	}

	// 3. Для каждого автомобиля считаем эффективный остаток и цену
	quotes := make([]CarQuote, 0, len(cars))
	for _, car := range cars {
		bookings, err := uc.bookingRepo.FindByCarAndRangeOverlap(ctx, car.ID, dateRange)
		if err != nil {
			uc.logger.Error("GetCarQuotes: failed to get bookings for car id=%s: %v", car.ID, err)
			return nil, fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		effective := domain.EffectiveStock(*car, dateRange, bookings)
		if req.OnlyAvailable && effective == 0 {
			continue
		}

		quote := domain.PriceForRange(*car, dateRange)
		quotes = append(quotes, CarQuote{
			CarID:             car.ID,
			Brand:             car.Brand,
			Model:             car.Model,
			Stock:             car.Stock,
			EffectiveStock:    effective,
			Available:         effective > 0,
			TotalPrice:        quote.TotalPrice,
			AverageDailyPrice: quote.AverageDailyPrice,
		})
	}

	uc.logger.Info("GetCarQuotes: %d of %d car(s) quoted for %s", len(quotes), len(cars), dateRange)

	return &Response{
		StartDate: dateRange.Start(),
		EndDate:   dateRange.End(),
		Days:      dateRange.Days(),
		Quotes:    quotes,
	}, nil
}
