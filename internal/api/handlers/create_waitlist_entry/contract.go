package create_waitlist_entry

import (
	"context"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// ContentService интерфейс сервиса контента
type ContentService interface {
	CreateWaitlistEntry(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
