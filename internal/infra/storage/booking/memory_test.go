package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
	"github.com/travelbuff/TB-ConciergeService/pkg/types"
)

func newTestBooking(date string, t string) *domain.Booking {
	return &domain.Booking{
		Name:            "Anna Petrova",
		Email:           "anna@example.com",
		ServiceInterest: "luxury-travel",
		Date:            date,
		Time:            types.TimeString(t),
		Status:          domain.StatusPending,
	}
}

func TestMemoryRepository_Create(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestBooking("2025-08-01", "10:00"))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, domain.StatusPending, created.Status)
}

func TestMemoryRepository_Create_SlotTaken(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestBooking("2025-08-01", "10:00"))
	require.NoError(t, err)

	// Тот же слот занят
	_, err = repo.Create(ctx, newTestBooking("2025-08-01", "10:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Другое время того же дня свободно
	_, err = repo.Create(ctx, newTestBooking("2025-08-01", "11:00"))
	assert.NoError(t, err)

	// То же время другого дня свободно
	_, err = repo.Create(ctx, newTestBooking("2025-08-02", "10:00"))
	assert.NoError(t, err)
}

func TestMemoryRepository_GetAll_NewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, newTestBooking("2025-08-01", "09:00"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newTestBooking("2025-08-01", "10:00"))
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestMemoryRepository_GetByDate_SortedByTime(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestBooking("2025-08-01", "15:00"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestBooking("2025-08-01", "09:00"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestBooking("2025-08-02", "10:00"))
	require.NoError(t, err)

	result, err := repo.GetByDate(ctx, "2025-08-01")
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "09:00", result[0].Time.String())
	assert.Equal(t, "15:00", result[1].Time.String())
}

func TestMemoryRepository_IsSlotTaken(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	taken, err := repo.IsSlotTaken(ctx, "2025-08-01", "10:00")
	require.NoError(t, err)
	assert.False(t, taken)

	_, err = repo.Create(ctx, newTestBooking("2025-08-01", "10:00"))
	require.NoError(t, err)

	taken, err = repo.IsSlotTaken(ctx, "2025-08-01", "10:00")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestMemoryRepository_ConcurrentCreate_NoDoubleBooking(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	const attempts = 50
	successes := make(chan *domain.Booking, attempts)

	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			created, err := repo.Create(ctx, newTestBooking("2025-08-01", "10:00"))
			if err == nil {
				successes <- created
			}
		}()
	}
	wg.Wait()
	close(successes)

	// Ровно одна попытка должна была занять слот
	assert.Len(t, successes, 1)

	result, err := repo.GetByDate(ctx, "2025-08-01")
	require.NoError(t, err)
	assert.Len(t, result, 1)
}
