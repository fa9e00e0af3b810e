package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Полная валидация формы (формат email, длины полей) выполняется на
// HTTP границе; здесь перепроверяется минимум, без которого операция
// не имеет смысла
func validateRequest(req *Request) error {
	if len(strings.TrimSpace(req.Name)) < domain.MinNameLength {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceInterest) == "" {
		return fmt.Errorf("%w: serviceInterest is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Дата должна быть календарной датой YYYY-MM-DD
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	// Формат времени проверяется строго, принадлежность каноническому
	// набору слотов - нет: контракт требует только отсутствия коллизии
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}
