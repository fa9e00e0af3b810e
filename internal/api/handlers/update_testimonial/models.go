package update_testimonial

import (
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// UpdateTestimonialRequest HTTP request model
// Все поля опциональны: отсутствующие не изменяются
type UpdateTestimonialRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty" validate:"omitempty,min=10"`
	Rating   *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	ImageURL *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	IsActive *bool   `json:"isActive,omitempty"`
}

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

// ToDomain конвертирует HTTP запрос в доменную модель обновления
func (r *UpdateTestimonialRequest) ToDomain() domain.TestimonialUpdate {
	return domain.TestimonialUpdate{
		Name:     r.Name,
		Title:    r.Title,
		Content:  r.Content,
		Rating:   r.Rating,
		ImageURL: r.ImageURL,
		IsActive: r.IsActive,
	}
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(t *domain.Testimonial) *TestimonialResponse {
	return &TestimonialResponse{
		ID:        t.ID,
		Name:      t.Name,
		Title:     t.Title,
		Content:   t.Content,
		Rating:    t.Rating,
		ImageURL:  t.ImageURL,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}
