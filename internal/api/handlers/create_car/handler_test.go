package create_car

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-CarRentalService/internal/service/cars"
	"github.com/m04kA/SMC-CarRentalService/internal/service/cars/models"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *models.CreateCarRequest) (*models.CarResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.CarResponse)
	return resp, args.Error(1)
}

func post(svc CarService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/cars", strings.NewReader(body)))
	return rec
}

const validBody = `{"brand":"Toyota","model":"Corolla","stock":3,"peakPrice":98.43,"midPrice":76.89,"offPrice":53.65}`

func TestHandler_Created(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, &models.CreateCarRequest{
		Brand: "Toyota", Model: "Corolla", Stock: 3, PeakPrice: 98.43, MidPrice: 76.89, OffPrice: 53.65,
	}).Return(&models.CarResponse{ID: "c1", Brand: "Toyota"}, nil)

	rec := post(svc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"c1"`)
	svc.AssertExpectations(t)
}

func TestHandler_Errors(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: stock must not be negative", cars.ErrInvalidInput)).Once()
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	assert.Equal(t, http.StatusBadRequest, post(svc, validBody).Code)
	assert.Equal(t, http.StatusInternalServerError, post(svc, validBody).Code)
	assert.Equal(t, http.StatusBadRequest, post(&mockService{}, `{"brand":`).Code)
}
