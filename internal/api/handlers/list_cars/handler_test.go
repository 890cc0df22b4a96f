package list_cars

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/service/cars/models"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context) (*models.CarListResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*models.CarListResponse)
	return resp, args.Error(1)
}

func TestHandler(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything).Return(&models.CarListResponse{
		Cars:  []models.CarResponse{{ID: "c1", Brand: "Audi"}},
		Total: 1,
	}, nil).Once()
	svc.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cars", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CarListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Audi", resp.Cars[0].Brand)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cars", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
