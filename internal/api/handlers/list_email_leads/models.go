package list_email_leads

import (
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// EmailLeadResponse HTTP response model
type EmailLeadResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name,omitempty"`
	Source    string  `json:"source"`
	CreatedAt string  `json:"createdAt"`
}

// FromDomain конвертирует доменные модели в HTTP response
func FromDomain(leads []*domain.EmailLead) []*EmailLeadResponse {
	result := make([]*EmailLeadResponse, 0, len(leads))
	for _, lead := range leads {
		result = append(result, &EmailLeadResponse{
			ID:        lead.ID,
			Email:     lead.Email,
			Name:      lead.Name,
			Source:    lead.Source,
			CreatedAt: lead.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}
