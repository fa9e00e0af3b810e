package create_booking

import (
	"context"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
	createBooking "github.com/travelbuff/TB-ConciergeService/internal/usecase/create_booking"
)

// CreateBookingUseCase интерфейс use case создания бронирования
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Notifier интерфейс best-effort email уведомлений
// Ошибка отправки логируется и никогда не влияет на результат бронирования
type Notifier interface {
	SendBookingNotification(ctx context.Context, booking *domain.Booking) error
}

// Metrics интерфейс доменных метрик бронирования
type Metrics interface {
	IncBookingCreated()
	IncSlotConflict()
	IncNotificationFailure()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
