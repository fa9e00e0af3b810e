package create_partner

import (
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// CreatePartnerRequest HTTP request model
// IsActive по умолчанию true, если поле не передано
type CreatePartnerRequest struct {
	Name         string  `json:"name" validate:"required,min=2"`
	LogoURL      string  `json:"logoUrl" validate:"required,url"`
	Description  *string `json:"description,omitempty"`
	Website      *string `json:"website,omitempty" validate:"omitempty,url"`
	DisplayOrder int     `json:"displayOrder"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

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

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *CreatePartnerRequest) ToDomain() *domain.Partner {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &domain.Partner{
		Name:         r.Name,
		LogoURL:      r.LogoURL,
		Description:  r.Description,
		Website:      r.Website,
		DisplayOrder: r.DisplayOrder,
		IsActive:     isActive,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(p *domain.Partner) *PartnerResponse {
	return &PartnerResponse{
		ID:           p.ID,
		Name:         p.Name,
		LogoURL:      p.LogoURL,
		Description:  p.Description,
		Website:      p.Website,
		DisplayOrder: p.DisplayOrder,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}
