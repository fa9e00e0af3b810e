package update_partner

import (
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// UpdatePartnerRequest HTTP request model
// Все поля опциональны: отсутствующие не изменяются
type UpdatePartnerRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2"`
	LogoURL      *string `json:"logoUrl,omitempty" validate:"omitempty,url"`
	Description  *string `json:"description,omitempty"`
	Website      *string `json:"website,omitempty" validate:"omitempty,url"`
	DisplayOrder *int    `json:"displayOrder,omitempty"`
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

// ToDomain конвертирует HTTP запрос в доменную модель обновления
func (r *UpdatePartnerRequest) ToDomain() domain.PartnerUpdate {
	return domain.PartnerUpdate{
		Name:         r.Name,
		LogoURL:      r.LogoURL,
		Description:  r.Description,
		Website:      r.Website,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
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
