package create_testimonial

import (
	"time"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// CreateTestimonialRequest HTTP request model
// IsActive по умолчанию true, если поле не передано
type CreateTestimonialRequest struct {
	Name     string  `json:"name" validate:"required,min=2"`
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required,min=10"`
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
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

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *CreateTestimonialRequest) ToDomain() *domain.Testimonial {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return &domain.Testimonial{
		Name:     r.Name,
		Title:    r.Title,
		Content:  r.Content,
		Rating:   r.Rating,
		ImageURL: r.ImageURL,
		IsActive: isActive,
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
