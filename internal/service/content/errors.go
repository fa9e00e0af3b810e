package content

import "errors"

var (
	// ErrConsultationNotFound возвращается, когда запрос на консультацию не найден
	ErrConsultationNotFound = errors.New("content: consultation not found")

	// ErrPartnerNotFound возвращается, когда партнер не найден
	ErrPartnerNotFound = errors.New("content: partner not found")

	// ErrTestimonialNotFound возвращается, когда отзыв не найден
	ErrTestimonialNotFound = errors.New("content: testimonial not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("content: internal error")
)
