package bookings

import (
	"context"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	GetAll(ctx context.Context) ([]*domain.Booking, error)
	GetByDate(ctx context.Context, date string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
