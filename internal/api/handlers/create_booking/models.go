package create_booking

import (
	"fmt"
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
	createBooking "github.com/travelbuff/TB-ConciergeService/internal/usecase/create_booking"
	"github.com/travelbuff/TB-ConciergeService/pkg/types"
)

// CreateBookingRequest HTTP request model
// Правила валидации повторяют схему формы фронтенда
type CreateBookingRequest struct {
	Name            string  `json:"name" validate:"required,min=2"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           *string `json:"phone,omitempty"`
	ServiceInterest string  `json:"serviceInterest" validate:"required"`
	Date            string  `json:"date" validate:"required"` // "2025-08-01"
	Time            string  `json:"time" validate:"required"` // "10:00"
	Message         *string `json:"message,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	ServiceInterest string  `json:"serviceInterest"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Message         *string `json:"message,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// (с проверкой формата даты и времени)
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	if _, err := time.Parse(domain.DateFormat, r.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		ServiceInterest: r.ServiceInterest,
		Date:            r.Date,
		Time:            startTime,
		Message:         r.Message,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Name:            resp.Name,
		Email:           resp.Email,
		Phone:           resp.Phone,
		ServiceInterest: resp.ServiceInterest,
		Date:            resp.Date,
		Time:            resp.Time.String(),
		Message:         resp.Message,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}

// toDomainBooking восстанавливает доменное бронирование из ответа use case
// Используется для передачи в Notifier
func toDomainBooking(resp *createBooking.Response) *domain.Booking {
	return &domain.Booking{
		ID:              resp.ID,
		Name:            resp.Name,
		Email:           resp.Email,
		Phone:           resp.Phone,
		ServiceInterest: resp.ServiceInterest,
		Date:            resp.Date,
		Time:            resp.Time,
		Message:         resp.Message,
		Status:          domain.BookingStatus(resp.Status),
		CreatedAt:       resp.CreatedAt,
	}
}
