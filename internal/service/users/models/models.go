package models

import (
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// CreateUserRequest запрос на регистрацию пользователя
type CreateUserRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	LicenseNumber string `json:"licenseNumber"`
	LicenseExpiry string `json:"licenseExpiry"` // "2030-12-31"
}

// UserResponse ответ с данными пользователя
type UserResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	LicenseNumber string `json:"licenseNumber"`
	LicenseExpiry string `json:"licenseExpiry"`
	CreatedAt     string `json:"createdAt"`
}

// FromDomainUser конвертирует domain.User в UserResponse
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:            u.ID.String(),
		Name:          u.Name,
		Email:         u.Email,
		LicenseNumber: u.License.Number,
		LicenseExpiry: u.License.ExpiryDate.Format(domain.DateFormat),
		CreatedAt:     u.CreatedAt.Format(time.RFC3339),
	}
}
