package create_consultation

import (
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// CreateConsultationRequest HTTP request model
type CreateConsultationRequest struct {
	Name            string  `json:"name" validate:"required,min=2"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           *string `json:"phone,omitempty"`
	ServiceInterest string  `json:"serviceInterest" validate:"required"`
	Message         string  `json:"message" validate:"required,min=10"`
}

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

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *CreateConsultationRequest) ToDomain() *domain.Consultation {
	return &domain.Consultation{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		ServiceInterest: r.ServiceInterest,
		Message:         r.Message,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(c *domain.Consultation) *ConsultationResponse {
	return &ConsultationResponse{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		ServiceInterest: c.ServiceInterest,
		Message:         c.Message,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
}
