package create_email_lead

import (
	"context"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// ContentService интерфейс сервиса контента
type ContentService interface {
	CreateEmailLead(ctx context.Context, lead *domain.EmailLead) (*domain.EmailLead, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
