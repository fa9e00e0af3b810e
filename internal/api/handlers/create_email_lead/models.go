package create_email_lead

import (
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// CreateEmailLeadRequest HTTP request model
type CreateEmailLeadRequest struct {
	Email  string  `json:"email" validate:"required,email"`
	Name   *string `json:"name,omitempty"`
	Source string  `json:"source" validate:"required"`
}

// EmailLeadResponse HTTP response model
type EmailLeadResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name,omitempty"`
	Source    string  `json:"source"`
	CreatedAt string  `json:"createdAt"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *CreateEmailLeadRequest) ToDomain() *domain.EmailLead {
	return &domain.EmailLead{
		Email:  r.Email,
		Name:   r.Name,
		Source: r.Source,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(lead *domain.EmailLead) *EmailLeadResponse {
	return &EmailLeadResponse{
		ID:        lead.ID,
		Email:     lead.Email,
		Name:      lead.Name,
		Source:    lead.Source,
		CreatedAt: lead.CreatedAt.Format(time.RFC3339),
	}
}
