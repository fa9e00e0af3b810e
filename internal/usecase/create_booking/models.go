package create_booking

import (
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
	"github.com/travelbuff/TB-ConciergeService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name            string
	Email           string
	Phone           *string
	ServiceInterest string
	Date            string           // "2025-08-01"
	Time            types.TimeString // "10:00"
	Message         *string
}

// Response модель созданного бронирования
type Response struct {
	ID              string
	Name            string
	Email           string
	Phone           *string
	ServiceInterest string
	Date            string
	Time            types.TimeString
	Message         *string
	Status          string
	CreatedAt       time.Time
}

// fromDomain конвертирует доменное бронирование в ответ use case
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		ServiceInterest: b.ServiceInterest,
		Date:            b.Date,
		Time:            b.Time,
		Message:         b.Message,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}
