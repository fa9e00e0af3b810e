package list_waitlist

import (
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// WaitlistEntryResponse HTTP response model
type WaitlistEntryResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         *string `json:"name,omitempty"`
	Destination  *string `json:"destination,omitempty"`
	TravelPeriod *string `json:"travelPeriod,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// FromDomain конвертирует доменные модели в HTTP response
func FromDomain(entries []*domain.WaitlistEntry) []*WaitlistEntryResponse {
	result := make([]*WaitlistEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, &WaitlistEntryResponse{
			ID:           entry.ID,
			Email:        entry.Email,
			Name:         entry.Name,
			Destination:  entry.Destination,
			TravelPeriod: entry.TravelPeriod,
			CreatedAt:    entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}
