package list_bookings

import (
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

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

// FromDomain конвертирует доменные бронирования в HTTP response
func FromDomain(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, &BookingResponse{
			ID:              b.ID,
			Name:            b.Name,
			Email:           b.Email,
			Phone:           b.Phone,
			ServiceInterest: b.ServiceInterest,
			Date:            b.Date,
			Time:            b.Time.String(),
			Message:         b.Message,
			Status:          string(b.Status),
			CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}
