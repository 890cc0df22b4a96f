package cancel_booking

import (
	"context"

	"github.com/google/uuid"
)

type BookingService interface {
	Cancel(ctx context.Context, bookingID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
