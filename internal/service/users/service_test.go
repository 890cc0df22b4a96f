package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-CarRentalService/internal/service/users/models"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type testEnv struct {
	bookings *memory.BookingRepository
	svc      *Service
}

func newTestEnv() *testEnv {
	store := memory.NewStore()
	svc := NewService(memory.NewUserRepository(store), logger.NewNop())
	svc.timeProvider = fixedTimeProvider{now: time.Date(2028, 1, 10, 12, 0, 0, 0, time.UTC)}
	return &testEnv{bookings: memory.NewBookingRepository(store), svc: svc}
}

func validRequest() *models.CreateUserRequest {
	return &models.CreateUserRequest{
		Name:          "Alice",
		Email:         "alice@example.com",
		LicenseNumber: "DL-12345",
		LicenseExpiry: "2030-12-31",
	}
}

func TestService_Create(t *testing.T) {
	env := newTestEnv()

	resp, err := env.svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "DL-12345", resp.LicenseNumber)
	assert.Equal(t, "2030-12-31", resp.LicenseExpiry)
	assert.Equal(t, "2028-01-10T12:00:00Z", resp.CreatedAt)

	got, err := env.svc.GetByID(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, resp, got)
}

func TestService_Create_ExpiredLicenseAccepted(t *testing.T) {
	req := validRequest()
	req.LicenseExpiry = "2020-01-01"

	resp, err := newTestEnv().svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01", resp.LicenseExpiry)
}

func TestService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.CreateUserRequest)
	}{
		{"empty name", func(r *models.CreateUserRequest) { r.Name = "" }},
		{"bad email", func(r *models.CreateUserRequest) { r.Email = "not-an-email" }},
		{"empty license number", func(r *models.CreateUserRequest) { r.LicenseNumber = " " }},
		{"bad expiry format", func(r *models.CreateUserRequest) { r.LicenseExpiry = "31.12.2030" }},
		{"missing expiry", func(r *models.CreateUserRequest) { r.LicenseExpiry = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := newTestEnv().svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	_, err := newTestEnv().svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Delete_KeepsBookings(t *testing.T) {
	env := newTestEnv()
	resp, err := env.svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	userID := uuid.MustParse(resp.ID)

	r, err := domain.NewDateRange(time.Date(2028, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2028, 6, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	booking := &domain.Booking{
		ID:         uuid.New(),
		User:       domain.User{ID: userID, Name: "Alice"},
		Car:        domain.Car{ID: uuid.New(), Brand: "Toyota", Model: "Corolla"},
		Range:      r,
		TotalPrice: 19686,
	}
	require.NoError(t, env.bookings.Save(context.Background(), booking))

	require.NoError(t, env.svc.Delete(context.Background(), userID))

	_, err = env.svc.GetByID(context.Background(), userID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	kept, err := env.bookings.FindByUserID(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "Alice", kept[0].User.Name)

	err = env.svc.Delete(context.Background(), userID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
