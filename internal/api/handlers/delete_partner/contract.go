package delete_partner

import "context"

// ContentService интерфейс сервиса контента
type ContentService interface {
	DeletePartner(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
