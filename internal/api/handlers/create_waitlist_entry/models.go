package create_waitlist_entry

import (
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// CreateWaitlistEntryRequest HTTP request model
type CreateWaitlistEntryRequest struct {
	Email        string  `json:"email" validate:"required,email"`
	Name         *string `json:"name,omitempty"`
	Destination  *string `json:"destination,omitempty"`
	TravelPeriod *string `json:"travelPeriod,omitempty"`
}

// WaitlistEntryResponse HTTP response model
type WaitlistEntryResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         *string `json:"name,omitempty"`
	Destination  *string `json:"destination,omitempty"`
	TravelPeriod *string `json:"travelPeriod,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *CreateWaitlistEntryRequest) ToDomain() *domain.WaitlistEntry {
	return &domain.WaitlistEntry{
		Email:        r.Email,
		Name:         r.Name,
		Destination:  r.Destination,
		TravelPeriod: r.TravelPeriod,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(entry *domain.WaitlistEntry) *WaitlistEntryResponse {
	return &WaitlistEntryResponse{
		ID:           entry.ID,
		Email:        entry.Email,
		Name:         entry.Name,
		Destination:  entry.Destination,
		TravelPeriod: entry.TravelPeriod,
		CreatedAt:    entry.CreatedAt.Format(time.RFC3339),
	}
}
