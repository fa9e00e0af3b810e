package create_partner

import (
	"context"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// ContentService интерфейс сервиса контента
type ContentService interface {
	CreatePartner(ctx context.Context, partner *domain.Partner) (*domain.Partner, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
