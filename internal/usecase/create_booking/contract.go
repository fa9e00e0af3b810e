package create_booking

import (
	"context"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByDate(ctx context.Context, date string) ([]*domain.Booking, error)
}

// SlotGuard сериализует конкурентные попытки бронирования одного слота
// Do выполняет fn под взаимоисключающим "клеймом" на ключ слота;
// клеймы на разные ключи не мешают друг другу, освобождение клейма
// гарантировано на любом пути выхода из fn
type SlotGuard interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
