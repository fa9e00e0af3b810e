package delete_testimonial

import "context"

// ContentService интерфейс сервиса контента
type ContentService interface {
	DeleteTestimonial(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
