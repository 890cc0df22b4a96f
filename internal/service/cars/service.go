package cars

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/car"
	"github.com/m04kA/SMC-CarRentalService/internal/service/cars/models"
)

// Service сервис каталога автомобилей
type Service struct {
	carRepo      CarRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса автомобилей
func NewService(carRepo CarRepository, logger Logger) *Service {
	return &Service{
		carRepo:      carRepo,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Create добавляет автомобиль в каталог
func (s *Service) Create(ctx context.Context, req *models.CreateCarRequest) (*models.CarResponse, error) {
	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: invalid car: %v", err)
		return nil, err
	}

	now := s.timeProvider.Now()
	car := &domain.Car{
		ID:        uuid.New(),
		Brand:     strings.TrimSpace(req.Brand),
		Model:     strings.TrimSpace(req.Model),
		Stock:     req.Stock,
		PeakPrice: domain.NewMoneyFromFloat(req.PeakPrice),
		MidPrice:  domain.NewMoneyFromFloat(req.MidPrice),
		OffPrice:  domain.NewMoneyFromFloat(req.OffPrice),
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Цена меньше цента округляется до нуля
	if !car.HasValidRates() {
		s.logger.Warn("Create: rates round to zero for %s %s", car.Brand, car.Model)
		return nil, fmt.Errorf("%w: all season rates must be positive", ErrInvalidInput)
	}

	if err := s.carRepo.Save(ctx, car); err != nil {
		s.logger.Error("Create: failed to save car: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Create: car id=%s %s %s added with stock=%d", car.ID, car.Brand, car.Model, car.Stock)
	return models.FromDomainCar(car), nil
}

// GetByID получает автомобиль по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.CarResponse, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("GetByID: car id=%s not found", id)
			return nil, ErrCarNotFound
		}
		s.logger.Error("GetByID: repository error for car id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainCar(car), nil
}

// List возвращает весь каталог
func (s *Service) List(ctx context.Context) (*models.CarListResponse, error) {
	cars, err := s.carRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainCarList(cars), nil
}

func validateCreate(req *models.CreateCarRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Brand) == "" {
		return fmt.Errorf("%w: brand is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Model) == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidInput)
	}
	if req.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidInput)
	}
	if req.PeakPrice <= 0 || req.MidPrice <= 0 || req.OffPrice <= 0 {
		return fmt.Errorf("%w: all season rates must be positive", ErrInvalidInput)
	}
	return nil
}
