package get_car_quotes

import (
	"context"

	getCarQuotes "github.com/m04kA/SMC-CarRentalService/internal/usecase/get_car_quotes"
)

type GetCarQuotesUseCase interface {
	Execute(ctx context.Context, req *getCarQuotes.Request) (*getCarQuotes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
