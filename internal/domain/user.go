package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a customer
type User struct {
	ID      uuid.UUID
	Name    string
	Email   string
	License DrivingLicense

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanDriveFor returns true if the user's license is valid through the end of the range
func (u *User) CanDriveFor(r DateRange) bool {
	return u.License.IsValidFor(r)
}
