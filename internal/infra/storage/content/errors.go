package content

import "errors"

var (
	// ErrConsultationNotFound возвращается, когда запрос на консультацию не найден
	ErrConsultationNotFound = errors.New("content.repository: consultation not found")

	// ErrPartnerNotFound возвращается, когда партнер не найден
	ErrPartnerNotFound = errors.New("content.repository: partner not found")

	// ErrTestimonialNotFound возвращается, когда отзыв не найден
	ErrTestimonialNotFound = errors.New("content.repository: testimonial not found")
)
