package get_user

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/service/users/models"
)

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
