package create_testimonial

import (
	"context"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// ContentService интерфейс сервиса контента
type ContentService interface {
	CreateTestimonial(ctx context.Context, testimonial *domain.Testimonial) (*domain.Testimonial, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
