package content

import (
	"context"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// ContentRepository интерфейс хранилища контентных сущностей
type ContentRepository interface {
	CreateConsultation(ctx context.Context, c *domain.Consultation) (*domain.Consultation, error)
	GetAllConsultations(ctx context.Context) ([]*domain.Consultation, error)
	GetConsultation(ctx context.Context, id string) (*domain.Consultation, error)

	CreateEmailLead(ctx context.Context, lead *domain.EmailLead) (*domain.EmailLead, error)
	GetAllEmailLeads(ctx context.Context) ([]*domain.EmailLead, error)

	CreateWaitlistEntry(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error)
	GetAllWaitlist(ctx context.Context) ([]*domain.WaitlistEntry, error)

	CreatePartner(ctx context.Context, partner *domain.Partner) (*domain.Partner, error)
	GetAllPartners(ctx context.Context) ([]*domain.Partner, error)
	UpdatePartner(ctx context.Context, id string, update domain.PartnerUpdate) (*domain.Partner, error)
	DeletePartner(ctx context.Context, id string) error

	CreateTestimonial(ctx context.Context, testimonial *domain.Testimonial) (*domain.Testimonial, error)
	GetAllTestimonials(ctx context.Context) ([]*domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, update domain.TestimonialUpdate) (*domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
