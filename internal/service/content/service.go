package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
	contentRepo "github.com/travelbuff/TB-ConciergeService/internal/infra/storage/content"
)

// Service сервис контентных сущностей сайта: запросы на консультации,
// email-лиды, лист ожидания, партнеры, отзывы. Обычный CRUD без
// инвариантов за пределами валидации полей (она на HTTP границе)
type Service struct {
	repo   ContentRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса контента
func NewService(repo ContentRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateConsultation сохраняет новый запрос на консультацию
func (s *Service) CreateConsultation(ctx context.Context, c *domain.Consultation) (*domain.Consultation, error) {
	created, err := s.repo.CreateConsultation(ctx, c)
	if err != nil {
		s.logger.Error("CreateConsultation: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateConsultation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateConsultation: created id=%s, service=%s", created.ID, created.ServiceInterest)
	return created, nil
}

// ListConsultations возвращает все запросы на консультации, новые первыми
func (s *Service) ListConsultations(ctx context.Context) ([]*domain.Consultation, error) {
	consultations, err := s.repo.GetAllConsultations(ctx)
	if err != nil {
		s.logger.Error("ListConsultations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListConsultations - repository error: %v", ErrInternal, err)
	}

	return consultations, nil
}

// GetConsultation возвращает запрос на консультацию по ID
func (s *Service) GetConsultation(ctx context.Context, id string) (*domain.Consultation, error) {
	consultation, err := s.repo.GetConsultation(ctx, id)
	if err != nil {
		if errors.Is(err, contentRepo.ErrConsultationNotFound) {
			s.logger.Warn("GetConsultation: id=%s not found", id)
			return nil, ErrConsultationNotFound
		}
		s.logger.Error("GetConsultation: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetConsultation - repository error: %v", ErrInternal, err)
	}

	return consultation, nil
}

// CreateEmailLead сохраняет новый email-лид
func (s *Service) CreateEmailLead(ctx context.Context, lead *domain.EmailLead) (*domain.EmailLead, error) {
	created, err := s.repo.CreateEmailLead(ctx, lead)
	if err != nil {
		s.logger.Error("CreateEmailLead: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateEmailLead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateEmailLead: created id=%s, source=%s", created.ID, created.Source)
	return created, nil
}

// ListEmailLeads возвращает все email-лиды, новые первыми
func (s *Service) ListEmailLeads(ctx context.Context) ([]*domain.EmailLead, error) {
	leads, err := s.repo.GetAllEmailLeads(ctx)
	if err != nil {
		s.logger.Error("ListEmailLeads: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEmailLeads - repository error: %v", ErrInternal, err)
	}

	return leads, nil
}

// CreateWaitlistEntry сохраняет новую запись листа ожидания
func (s *Service) CreateWaitlistEntry(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	created, err := s.repo.CreateWaitlistEntry(ctx, entry)
	if err != nil {
		s.logger.Error("CreateWaitlistEntry: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateWaitlistEntry - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateWaitlistEntry: created id=%s", created.ID)
	return created, nil
}

// ListWaitlist возвращает все записи листа ожидания, новые первыми
func (s *Service) ListWaitlist(ctx context.Context) ([]*domain.WaitlistEntry, error) {
	entries, err := s.repo.GetAllWaitlist(ctx)
	if err != nil {
		s.logger.Error("ListWaitlist: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWaitlist - repository error: %v", ErrInternal, err)
	}

	return entries, nil
}

// CreatePartner сохраняет нового партнера
func (s *Service) CreatePartner(ctx context.Context, partner *domain.Partner) (*domain.Partner, error) {
	created, err := s.repo.CreatePartner(ctx, partner)
	if err != nil {
		s.logger.Error("CreatePartner: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreatePartner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePartner: created id=%s, name=%s", created.ID, created.Name)
	return created, nil
}

// ListPartners возвращает партнеров, отсортированных по DisplayOrder
// При activeOnly=true неактивные партнеры отфильтровываются (публичная витрина)
func (s *Service) ListPartners(ctx context.Context, activeOnly bool) ([]*domain.Partner, error) {
	partners, err := s.repo.GetAllPartners(ctx)
	if err != nil {
		s.logger.Error("ListPartners: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPartners - repository error: %v", ErrInternal, err)
	}

	if !activeOnly {
		return partners, nil
	}

	active := make([]*domain.Partner, 0, len(partners))
	for _, p := range partners {
		if p.IsActive {
			active = append(active, p)
		}
	}

	return active, nil
}

// UpdatePartner частично обновляет партнера
func (s *Service) UpdatePartner(ctx context.Context, id string, update domain.PartnerUpdate) (*domain.Partner, error) {
	updated, err := s.repo.UpdatePartner(ctx, id, update)
	if err != nil {
		if errors.Is(err, contentRepo.ErrPartnerNotFound) {
			s.logger.Warn("UpdatePartner: id=%s not found", id)
			return nil, ErrPartnerNotFound
		}
		s.logger.Error("UpdatePartner: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdatePartner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePartner: updated id=%s", id)
	return updated, nil
}

// DeletePartner удаляет партнера
func (s *Service) DeletePartner(ctx context.Context, id string) error {
	if err := s.repo.DeletePartner(ctx, id); err != nil {
		if errors.Is(err, contentRepo.ErrPartnerNotFound) {
			s.logger.Warn("DeletePartner: id=%s not found", id)
			return ErrPartnerNotFound
		}
		s.logger.Error("DeletePartner: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeletePartner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeletePartner: deleted id=%s", id)
	return nil
}

// CreateTestimonial сохраняет новый отзыв
func (s *Service) CreateTestimonial(ctx context.Context, testimonial *domain.Testimonial) (*domain.Testimonial, error) {
	created, err := s.repo.CreateTestimonial(ctx, testimonial)
	if err != nil {
		s.logger.Error("CreateTestimonial: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateTestimonial - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTestimonial: created id=%s, rating=%d", created.ID, created.Rating)
	return created, nil
}

// ListTestimonials возвращает отзывы, новые первыми
// При activeOnly=true неактивные отзывы отфильтровываются (публичная витрина)
func (s *Service) ListTestimonials(ctx context.Context, activeOnly bool) ([]*domain.Testimonial, error) {
	testimonials, err := s.repo.GetAllTestimonials(ctx)
	if err != nil {
		s.logger.Error("ListTestimonials: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTestimonials - repository error: %v", ErrInternal, err)
	}

	if !activeOnly {
		return testimonials, nil
	}

	active := make([]*domain.Testimonial, 0, len(testimonials))
	for _, t := range testimonials {
		if t.IsActive {
			active = append(active, t)
		}
	}

	return active, nil
}

// UpdateTestimonial частично обновляет отзыв
func (s *Service) UpdateTestimonial(ctx context.Context, id string, update domain.TestimonialUpdate) (*domain.Testimonial, error) {
	updated, err := s.repo.UpdateTestimonial(ctx, id, update)
	if err != nil {
		if errors.Is(err, contentRepo.ErrTestimonialNotFound) {
			s.logger.Warn("UpdateTestimonial: id=%s not found", id)
			return nil, ErrTestimonialNotFound
		}
		s.logger.Error("UpdateTestimonial: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateTestimonial - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateTestimonial: updated id=%s", id)
	return updated, nil
}

// DeleteTestimonial удаляет отзыв
func (s *Service) DeleteTestimonial(ctx context.Context, id string) error {
	if err := s.repo.DeleteTestimonial(ctx, id); err != nil {
		if errors.Is(err, contentRepo.ErrTestimonialNotFound) {
			s.logger.Warn("DeleteTestimonial: id=%s not found", id)
			return ErrTestimonialNotFound
		}
		s.logger.Error("DeleteTestimonial: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteTestimonial - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteTestimonial: deleted id=%s", id)
	return nil
}
