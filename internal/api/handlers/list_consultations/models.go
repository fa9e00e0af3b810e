package list_consultations

import (
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// ConsultationResponse HTTP response model
type ConsultationResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	ServiceInterest string  `json:"serviceInterest"`
	Message         string  `json:"message"`
	CreatedAt       string  `json:"createdAt"`
}

// FromDomain конвертирует доменные модели в HTTP response
func FromDomain(consultations []*domain.Consultation) []*ConsultationResponse {
	result := make([]*ConsultationResponse, 0, len(consultations))
	for _, c := range consultations {
		result = append(result, &ConsultationResponse{
			ID:              c.ID,
			Name:            c.Name,
			Email:           c.Email,
			Phone:           c.Phone,
			ServiceInterest: c.ServiceInterest,
			Message:         c.Message,
			CreatedAt:       c.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}
