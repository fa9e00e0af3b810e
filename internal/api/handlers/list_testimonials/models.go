package list_testimonials

import (
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// TestimonialResponse HTTP response model
type TestimonialResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Rating    int     `json:"rating"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	IsActive  bool    `json:"isActive"`
	CreatedAt string  `json:"createdAt"`
}

// FromDomain конвертирует доменные модели в HTTP response
func FromDomain(testimonials []*domain.Testimonial) []*TestimonialResponse {
	result := make([]*TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		result = append(result, &TestimonialResponse{
			ID:        t.ID,
			Name:      t.Name,
			Title:     t.Title,
			Content:   t.Content,
			Rating:    t.Rating,
			ImageURL:  t.ImageURL,
			IsActive:  t.IsActive,
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}
