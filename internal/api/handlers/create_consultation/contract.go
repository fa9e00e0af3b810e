package create_consultation

import (
	"context"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// ContentService интерфейс сервиса контента
type ContentService interface {
	CreateConsultation(ctx context.Context, c *domain.Consultation) (*domain.Consultation, error)
}

// Notifier интерфейс best-effort email уведомлений
type Notifier interface {
	SendConsultationNotification(ctx context.Context, c *domain.Consultation) error
}

// Metrics интерфейс метрик уведомлений
type Metrics interface {
	IncNotificationFailure()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
