package list_partners

import (
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// PartnerResponse HTTP response model
type PartnerResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	LogoURL      string  `json:"logoUrl"`
	Description  *string `json:"description,omitempty"`
	Website      *string `json:"website,omitempty"`
	DisplayOrder int     `json:"displayOrder"`
	IsActive     bool    `json:"isActive"`
	CreatedAt    string  `json:"createdAt"`
}

// FromDomain конвертирует доменные модели в HTTP response
func FromDomain(partners []*domain.Partner) []*PartnerResponse {
	result := make([]*PartnerResponse, 0, len(partners))
	for _, p := range partners {
		result = append(result, &PartnerResponse{
			ID:           p.ID,
			Name:         p.Name,
			LogoURL:      p.LogoURL,
			Description:  p.Description,
			Website:      p.Website,
			DisplayOrder: p.DisplayOrder,
			IsActive:     p.IsActive,
			CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}
