package content

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
)

// MemoryRepository процессное in-memory хранилище контентных сущностей:
// запросы на консультации, email-лиды, лист ожидания, партнеры, отзывы.
// Инвариантов за пределами валидации полей у этих записей нет, поэтому
// достаточно одного RWMutex на все коллекции. Наружу отдаются копии.
type MemoryRepository struct {
	mu sync.RWMutex

	consultations      map[string]domain.Consultation
	consultationsOrder []string

	emailLeads      map[string]domain.EmailLead
	emailLeadsOrder []string

	waitlist      map[string]domain.WaitlistEntry
	waitlistOrder []string

	partners map[string]domain.Partner

	testimonials      map[string]domain.Testimonial
	testimonialsOrder []string
}

// NewMemoryRepository создает новое in-memory хранилище контента
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		consultations: make(map[string]domain.Consultation),
		emailLeads:    make(map[string]domain.EmailLead),
		waitlist:      make(map[string]domain.WaitlistEntry),
		partners:      make(map[string]domain.Partner),
		testimonials:  make(map[string]domain.Testimonial),
	}
}

// CreateConsultation сохраняет новый запрос на консультацию
func (r *MemoryRepository) CreateConsultation(ctx context.Context, c *domain.Consultation) (*domain.Consultation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *c
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	r.consultations[stored.ID] = stored
	r.consultationsOrder = append(r.consultationsOrder, stored.ID)

	result := stored
	return &result, nil
}

// GetAllConsultations возвращает все запросы на консультации, новые первыми
func (r *MemoryRepository) GetAllConsultations(ctx context.Context) ([]*domain.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Consultation, 0, len(r.consultationsOrder))
	for i := len(r.consultationsOrder) - 1; i >= 0; i-- {
		c := r.consultations[r.consultationsOrder[i]]
		result = append(result, &c)
	}

	return result, nil
}

// GetConsultation возвращает запрос на консультацию по ID
func (r *MemoryRepository) GetConsultation(ctx context.Context, id string) (*domain.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.consultations[id]
	if !ok {
		return nil, ErrConsultationNotFound
	}

	return &c, nil
}

// CreateEmailLead сохраняет новый email-лид
func (r *MemoryRepository) CreateEmailLead(ctx context.Context, lead *domain.EmailLead) (*domain.EmailLead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *lead
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	r.emailLeads[stored.ID] = stored
	r.emailLeadsOrder = append(r.emailLeadsOrder, stored.ID)

	result := stored
	return &result, nil
}

// GetAllEmailLeads возвращает все email-лиды, новые первыми
func (r *MemoryRepository) GetAllEmailLeads(ctx context.Context) ([]*domain.EmailLead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.EmailLead, 0, len(r.emailLeadsOrder))
	for i := len(r.emailLeadsOrder) - 1; i >= 0; i-- {
		lead := r.emailLeads[r.emailLeadsOrder[i]]
		result = append(result, &lead)
	}

	return result, nil
}

// CreateWaitlistEntry сохраняет новую запись листа ожидания
func (r *MemoryRepository) CreateWaitlistEntry(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *entry
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	r.waitlist[stored.ID] = stored
	r.waitlistOrder = append(r.waitlistOrder, stored.ID)

	result := stored
	return &result, nil
}

// GetAllWaitlist возвращает все записи листа ожидания, новые первыми
func (r *MemoryRepository) GetAllWaitlist(ctx context.Context) ([]*domain.WaitlistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.WaitlistEntry, 0, len(r.waitlistOrder))
	for i := len(r.waitlistOrder) - 1; i >= 0; i-- {
		entry := r.waitlist[r.waitlistOrder[i]]
		result = append(result, &entry)
	}

	return result, nil
}

// CreatePartner сохраняет нового партнера
func (r *MemoryRepository) CreatePartner(ctx context.Context, partner *domain.Partner) (*domain.Partner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *partner
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	r.partners[stored.ID] = stored

	result := stored
	return &result, nil
}

// GetAllPartners возвращает всех партнеров, отсортированных по DisplayOrder
func (r *MemoryRepository) GetAllPartners(ctx context.Context) ([]*domain.Partner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Partner, 0, len(r.partners))
	for _, p := range r.partners {
		partner := p
		result = append(result, &partner)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].DisplayOrder != result[j].DisplayOrder {
			return result[i].DisplayOrder < result[j].DisplayOrder
		}
		// Стабильный порядок при равных DisplayOrder
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

// UpdatePartner частично обновляет партнера
func (r *MemoryRepository) UpdatePartner(ctx context.Context, id string, update domain.PartnerUpdate) (*domain.Partner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	partner, ok := r.partners[id]
	if !ok {
		return nil, ErrPartnerNotFound
	}

	if update.Name != nil {
		partner.Name = *update.Name
	}
	if update.LogoURL != nil {
		partner.LogoURL = *update.LogoURL
	}
	if update.Description != nil {
		partner.Description = update.Description
	}
	if update.Website != nil {
		partner.Website = update.Website
	}
	if update.DisplayOrder != nil {
		partner.DisplayOrder = *update.DisplayOrder
	}
	if update.IsActive != nil {
		partner.IsActive = *update.IsActive
	}

	r.partners[id] = partner

	result := partner
	return &result, nil
}

// DeletePartner удаляет партнера
func (r *MemoryRepository) DeletePartner(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.partners[id]; !ok {
		return ErrPartnerNotFound
	}

	delete(r.partners, id)
	return nil
}

// CreateTestimonial сохраняет новый отзыв
func (r *MemoryRepository) CreateTestimonial(ctx context.Context, testimonial *domain.Testimonial) (*domain.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *testimonial
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	r.testimonials[stored.ID] = stored
	r.testimonialsOrder = append(r.testimonialsOrder, stored.ID)

	result := stored
	return &result, nil
}

// GetAllTestimonials возвращает все отзывы, новые первыми
func (r *MemoryRepository) GetAllTestimonials(ctx context.Context) ([]*domain.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Testimonial, 0, len(r.testimonialsOrder))
	for i := len(r.testimonialsOrder) - 1; i >= 0; i-- {
		t := r.testimonials[r.testimonialsOrder[i]]
		result = append(result, &t)
	}

	return result, nil
}

// UpdateTestimonial частично обновляет отзыв
func (r *MemoryRepository) UpdateTestimonial(ctx context.Context, id string, update domain.TestimonialUpdate) (*domain.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	testimonial, ok := r.testimonials[id]
	if !ok {
		return nil, ErrTestimonialNotFound
	}

	if update.Name != nil {
		testimonial.Name = *update.Name
	}
	if update.Title != nil {
		testimonial.Title = *update.Title
	}
	if update.Content != nil {
		testimonial.Content = *update.Content
	}
	if update.Rating != nil {
		testimonial.Rating = *update.Rating
	}
	if update.ImageURL != nil {
		testimonial.ImageURL = update.ImageURL
	}
	if update.IsActive != nil {
		testimonial.IsActive = *update.IsActive
	}

	r.testimonials[id] = testimonial

	result := testimonial
	return &result, nil
}

// DeleteTestimonial удаляет отзыв
func (r *MemoryRepository) DeleteTestimonial(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.testimonials[id]; !ok {
		return ErrTestimonialNotFound
	}

	delete(r.testimonials, id)

	// Подчищаем порядок создания
	for i, tid := range r.testimonialsOrder {
		if tid == id {
			r.testimonialsOrder = append(r.testimonialsOrder[:i], r.testimonialsOrder[i+1:]...)
			break
		}
	}

	return nil
}
