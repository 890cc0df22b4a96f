package cars

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-CarRentalService/internal/service/cars/models"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

func newTestService() *Service {
	svc := NewService(memory.NewCarRepository(memory.NewStore()), logger.NewNop())
	svc.timeProvider = fixedTimeProvider{now: time.Date(2028, 1, 10, 12, 0, 0, 0, time.UTC)}
	return svc
}

func validRequest() *models.CreateCarRequest {
	return &models.CreateCarRequest{
		Brand:     "Toyota",
		Model:     "Corolla",
		Stock:     3,
		PeakPrice: 98.43,
		MidPrice:  76.89,
		OffPrice:  53.65,
	}
}

func TestService_Create(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Toyota", resp.Brand)
	assert.Equal(t, 3, resp.Stock)
	assert.Equal(t, 98.43, resp.PeakPrice)
	assert.Equal(t, "2028-01-10T12:00:00Z", resp.CreatedAt)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	stored, err := svc.carRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(9843), stored.PeakPrice)
	assert.Equal(t, domain.Money(7689), stored.MidPrice)
	assert.Equal(t, domain.Money(5365), stored.OffPrice)
}

func TestService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.CreateCarRequest)
	}{
		{"empty brand", func(r *models.CreateCarRequest) { r.Brand = "  " }},
		{"empty model", func(r *models.CreateCarRequest) { r.Model = "" }},
		{"negative stock", func(r *models.CreateCarRequest) { r.Stock = -1 }},
		{"zero peak price", func(r *models.CreateCarRequest) { r.PeakPrice = 0 }},
		{"negative off price", func(r *models.CreateCarRequest) { r.OffPrice = -5 }},
		{"price below one cent", func(r *models.CreateCarRequest) { r.MidPrice = 0.001 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := newTestService().Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Create_ZeroStockAllowed(t *testing.T) {
	req := validRequest()
	req.Stock = 0

	resp, err := newTestService().Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stock)
}

func TestService_GetByID(t *testing.T) {
	svc := newTestService()
	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	resp, err := svc.GetByID(context.Background(), uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, created, resp)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestService_List(t *testing.T) {
	svc := newTestService()

	empty, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Total)

	second := validRequest()
	second.Brand = "Audi"
	_, err = svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), second)
	require.NoError(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, "Audi", list.Cars[0].Brand)
	assert.Equal(t, "Toyota", list.Cars[1].Brand)
}

type mockCarRepository struct {
	mock.Mock
}

func (m *mockCarRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	args := m.Called(ctx, id)
	car, _ := args.Get(0).(*domain.Car)
	return car, args.Error(1)
}

func (m *mockCarRepository) FindAll(ctx context.Context) ([]*domain.Car, error) {
	args := m.Called(ctx)
	cars, _ := args.Get(0).([]*domain.Car)
	return cars, args.Error(1)
}

func (m *mockCarRepository) Save(ctx context.Context, car *domain.Car) error {
	return m.Called(ctx, car).Error(0)
}

func TestService_RepositoryErrors(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &mockCarRepository{}
	repo.On("Save", mock.Anything, mock.Anything).Return(repoErr)
	repo.On("GetByID", mock.Anything, mock.Anything).Return(nil, repoErr)
	repo.On("FindAll", mock.Anything).Return(nil, repoErr)

	svc := NewService(repo, logger.NewNop())

	_, err := svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, repoErr)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)

	repo.AssertExpectations(t)
}
