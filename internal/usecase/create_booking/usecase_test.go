package create_booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
	bookingRepo "github.com/travelbuff/TB-ConciergeService/internal/infra/storage/booking"
	"github.com/travelbuff/TB-ConciergeService/pkg/slotlock"
	"github.com/travelbuff/TB-ConciergeService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase() *UseCase {
	return NewUseCase(bookingRepo.NewMemoryRepository(), slotlock.New(), nopLogger{})
}

func validRequest(date string, t string) *Request {
	return &Request{
		Name:            "Anna Petrova",
		Email:           "anna@example.com",
		ServiceInterest: "luxury-travel",
		Date:            date,
		Time:            types.TimeString(t),
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), validRequest("2025-08-01", "10:00"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "2025-08-01", resp.Date)
	assert.Equal(t, "10:00", resp.Time.String())
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Execute(ctx, validRequest("2025-08-01", "10:00"))
	require.NoError(t, err)

	// Второй запрос на тот же слот отклоняется
	_, err = uc.Execute(ctx, validRequest("2025-08-01", "10:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	// После конфликта слот не остается заблокированным для других времен
	_, err = uc.Execute(ctx, validRequest("2025-08-01", "11:00"))
	assert.NoError(t, err)

	// И то же время на другую дату свободно
	_, err = uc.Execute(ctx, validRequest("2025-08-02", "10:00"))
	assert.NoError(t, err)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "empty name", mutate: func(r *Request) { r.Name = "" }},
		{name: "one-char name", mutate: func(r *Request) { r.Name = "A" }},
		{name: "email without @", mutate: func(r *Request) { r.Email = "not-an-email" }},
		{name: "empty service interest", mutate: func(r *Request) { r.ServiceInterest = "  " }},
		{name: "empty date", mutate: func(r *Request) { r.Date = "" }},
		{name: "malformed date", mutate: func(r *Request) { r.Date = "01-08-2025" }},
		{name: "impossible date", mutate: func(r *Request) { r.Date = "2025-02-30" }},
		{name: "empty time", mutate: func(r *Request) { r.Time = "" }},
		{name: "malformed time", mutate: func(r *Request) { r.Time = "9:00" }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validRequest("2025-08-01", "10:00")
			c.mutate(req)

			_, err := uc.Execute(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// Невалидные запросы не должны занимать слот
	_, err := uc.Execute(ctx, validRequest("2025-08-01", "10:00"))
	assert.NoError(t, err)
}

func TestUseCase_Execute_NonCanonicalSlotAccepted(t *testing.T) {
	uc := newTestUseCase()

	// Формат проверяется строго, принадлежность каноническому набору - нет
	_, err := uc.Execute(context.Background(), validRequest("2025-08-01", "13:30"))
	assert.NoError(t, err)
}

func TestUseCase_Execute_ConcurrentSameSlot_ExactlyOneSuccess(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	const attempts = 50
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			_, err := uc.Execute(ctx, validRequest("2025-08-01", "10:00"))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, ErrSlotTaken):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes, "ровно одна попытка занимает слот")
	assert.Equal(t, attempts-1, conflicts)
}

func TestUseCase_Execute_ConcurrentDistinctSlots_AllSucceed(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	slots := []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

	var wg sync.WaitGroup
	errs := make(chan error, len(slots))

	wg.Add(len(slots))
	for _, slot := range slots {
		go func(slot string) {
			defer wg.Done()
			_, err := uc.Execute(ctx, validRequest("2025-08-01", slot))
			errs <- err
		}(slot)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
