package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	userRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CarRentalService/internal/service/users/models"
)

// Service сервис пользователей
type Service struct {
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo:     userRepo,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Create регистрирует пользователя вместе с водительским удостоверением
// Истёкшее удостоверение допускается: проверка идёт при бронировании
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	expiry, err := validateCreate(req)
	if err != nil {
		s.logger.Warn("Create: invalid user: %v", err)
		return nil, err
	}

	now := s.timeProvider.Now()
	user := &domain.User{
		ID:    uuid.New(),
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		License: domain.DrivingLicense{
			Number:     strings.TrimSpace(req.LicenseNumber),
			ExpiryDate: expiry,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Create: failed to save user: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Create: user id=%s registered", user.ID)
	return models.FromDomainUser(user), nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%s not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// Delete удаляет пользователя
// Бронирования хранят копию данных пользователя и остаются без изменений
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Delete: user id=%s not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("Delete: repository error for user id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: user id=%s deleted", id)
	return nil
}

func validateCreate(req *models.CreateUserRequest) (time.Time, error) {
	if req == nil {
		return time.Time{}, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return time.Time{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid email: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(req.LicenseNumber) == "" {
		return time.Time{}, fmt.Errorf("%w: license number is required", ErrInvalidInput)
	}

	expiry, err := time.Parse(domain.DateFormat, req.LicenseExpiry)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: license expiry must be YYYY-MM-DD", ErrInvalidInput)
	}
	return expiry, nil
}
