package get_availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
	bookingRepo "github.com/travelbuff/TB-ConciergeService/internal/infra/storage/booking"
	"github.com/travelbuff/TB-ConciergeService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testSlots = []types.TimeString{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

func TestUseCase_Execute_EmptyDay(t *testing.T) {
	repo := bookingRepo.NewMemoryRepository()
	uc := NewUseCase(repo, testSlots, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-08-01"})
	require.NoError(t, err)

	assert.Equal(t, "2025-08-01", resp.Date)
	assert.Equal(t, testSlots, resp.AvailableSlots)
	assert.Empty(t, resp.BookedSlots)
}

func TestUseCase_Execute_SplitsBookedAndAvailable(t *testing.T) {
	repo := bookingRepo.NewMemoryRepository()
	uc := NewUseCase(repo, testSlots, nopLogger{})
	ctx := context.Background()

	for _, slot := range []string{"10:00", "15:00"} {
		_, err := repo.Create(ctx, &domain.Booking{
			Name:            "Anna Petrova",
			Email:           "anna@example.com",
			ServiceInterest: "luxury-travel",
			Date:            "2025-08-01",
			Time:            types.TimeString(slot),
			Status:          domain.StatusPending,
		})
		require.NoError(t, err)
	}

	resp, err := uc.Execute(ctx, &Request{Date: "2025-08-01"})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "11:00", "14:00", "16:00"}, resp.AvailableSlots)
	assert.Equal(t, []types.TimeString{"10:00", "15:00"}, resp.BookedSlots)

	// Другая дата не затронута
	other, err := uc.Execute(ctx, &Request{Date: "2025-08-02"})
	require.NoError(t, err)
	assert.Equal(t, testSlots, other.AvailableSlots)
}

func TestUseCase_Execute_NonCanonicalBookingIgnored(t *testing.T) {
	repo := bookingRepo.NewMemoryRepository()
	uc := NewUseCase(repo, testSlots, nopLogger{})
	ctx := context.Background()

	// Бронирование вне канонического набора не попадает ни в один список
	_, err := repo.Create(ctx, &domain.Booking{
		Name:            "Anna Petrova",
		Email:           "anna@example.com",
		ServiceInterest: "luxury-travel",
		Date:            "2025-08-01",
		Time:            "13:30",
		Status:          domain.StatusPending,
	})
	require.NoError(t, err)

	resp, err := uc.Execute(ctx, &Request{Date: "2025-08-01"})
	require.NoError(t, err)

	assert.Equal(t, testSlots, resp.AvailableSlots)
	assert.Empty(t, resp.BookedSlots)
}

func TestUseCase_Execute_InvalidDate(t *testing.T) {
	uc := NewUseCase(bookingRepo.NewMemoryRepository(), testSlots, nopLogger{})
	ctx := context.Background()

	for _, date := range []string{"", "01-08-2025", "2025-13-01", "not-a-date"} {
		_, err := uc.Execute(ctx, &Request{Date: date})
		assert.ErrorIs(t, err, ErrInvalidDate, "date=%q", date)
	}
}
