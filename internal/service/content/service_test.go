package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
	contentRepo "github.com/travelbuff/TB-ConciergeService/internal/infra/storage/content"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService() *Service {
	return NewService(contentRepo.NewMemoryRepository(), nopLogger{})
}

func TestService_ListPartners_ActiveOnly(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreatePartner(ctx, &domain.Partner{Name: "Aman Resorts", LogoURL: "https://cdn.example.com/aman.png", DisplayOrder: 1, IsActive: true})
	require.NoError(t, err)
	_, err = svc.CreatePartner(ctx, &domain.Partner{Name: "Belmond", LogoURL: "https://cdn.example.com/belmond.png", DisplayOrder: 2, IsActive: false})
	require.NoError(t, err)

	// Публичная витрина: только активные
	public, err := svc.ListPartners(ctx, true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Aman Resorts", public[0].Name)

	// Административный список: все
	all, err := svc.ListPartners(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestService_ListTestimonials_ActiveOnly(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreateTestimonial(ctx, &domain.Testimonial{Name: "Maria K.", Title: "Amazing", Content: "Every detail was handled perfectly.", Rating: 5, IsActive: true})
	require.NoError(t, err)
	hidden, err := svc.CreateTestimonial(ctx, &domain.Testimonial{Name: "Pavel D.", Title: "Good", Content: "Smooth planning, great hotels.", Rating: 4, IsActive: false})
	require.NoError(t, err)

	public, err := svc.ListTestimonials(ctx, true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Maria K.", public[0].Name)

	all, err := svc.ListTestimonials(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Деактивированный отзыв исчезает из публичного списка после удаления
	require.NoError(t, svc.DeleteTestimonial(ctx, hidden.ID))
	all, err = svc.ListTestimonials(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestService_GetConsultation_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetConsultation(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrConsultationNotFound)
}

func TestService_UpdatePartner_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdatePartner(context.Background(), "missing-id", domain.PartnerUpdate{})
	assert.ErrorIs(t, err, ErrPartnerNotFound)

	assert.ErrorIs(t, svc.DeletePartner(context.Background(), "missing-id"), ErrPartnerNotFound)
}
