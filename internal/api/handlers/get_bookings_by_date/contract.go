package get_bookings_by_date

import (
	"context"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// BookingsService интерфейс сервиса чтения бронирований
type BookingsService interface {
	GetByDate(ctx context.Context, date string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
