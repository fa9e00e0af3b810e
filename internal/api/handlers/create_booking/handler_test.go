package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
	bookingRepo "github.com/travelbuff/TB-ConciergeService/internal/infra/storage/booking"
	createBooking "github.com/travelbuff/TB-ConciergeService/internal/usecase/create_booking"
	"github.com/travelbuff/TB-ConciergeService/pkg/slotlock"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type recordingNotifier struct {
	calls int
	err   error
}

func (n *recordingNotifier) SendBookingNotification(ctx context.Context, booking *domain.Booking) error {
	n.calls++
	return n.err
}

type recordingMetrics struct {
	created              int
	conflicts            int
	notificationFailures int
}

func (m *recordingMetrics) IncBookingCreated()      { m.created++ }
func (m *recordingMetrics) IncSlotConflict()        { m.conflicts++ }
func (m *recordingMetrics) IncNotificationFailure() { m.notificationFailures++ }

func newTestHandler(notifier Notifier, metrics Metrics) *Handler {
	uc := createBooking.NewUseCase(bookingRepo.NewMemoryRepository(), slotlock.New(), nopLogger{})
	return NewHandler(uc, notifier, metrics, nopLogger{})
}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{
	"name": "Anna Petrova",
	"email": "anna@example.com",
	"serviceInterest": "luxury-travel",
	"date": "2025-08-01",
	"time": "10:00"
}`

func TestHandler_Handle_Created(t *testing.T) {
	notifier := &recordingNotifier{}
	metrics := &recordingMetrics{}
	h := newTestHandler(notifier, metrics)

	rec := doRequest(h, validBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Anna Petrova", resp.Name)
	assert.Equal(t, "2025-08-01", resp.Date)
	assert.Equal(t, "10:00", resp.Time)
	assert.Equal(t, "pending", resp.Status)
	assert.NotEmpty(t, resp.CreatedAt)

	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, 1, metrics.created)
}

func TestHandler_Handle_SlotConflict(t *testing.T) {
	metrics := &recordingMetrics{}
	h := newTestHandler(&recordingNotifier{}, metrics)

	rec := doRequest(h, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(h, validBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "time slot already booked")

	assert.Equal(t, 1, metrics.created)
	assert.Equal(t, 1, metrics.conflicts)

	// Другое время того же дня проходит
	retry := strings.Replace(validBody, "10:00", "11:00", 1)
	rec = doRequest(h, retry)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_Handle_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"name":`},
		{name: "unknown field", body: `{"name": "Anna Petrova", "email": "anna@example.com", "serviceInterest": "x", "date": "2025-08-01", "time": "10:00", "extra": 1}`},
		{name: "missing email", body: `{"name": "Anna Petrova", "serviceInterest": "x", "date": "2025-08-01", "time": "10:00"}`},
		{name: "invalid email", body: `{"name": "Anna Petrova", "email": "nope", "serviceInterest": "x", "date": "2025-08-01", "time": "10:00"}`},
		{name: "short name", body: `{"name": "A", "email": "anna@example.com", "serviceInterest": "x", "date": "2025-08-01", "time": "10:00"}`},
		{name: "malformed date", body: `{"name": "Anna Petrova", "email": "anna@example.com", "serviceInterest": "x", "date": "01-08-2025", "time": "10:00"}`},
		{name: "malformed time", body: `{"name": "Anna Petrova", "email": "anna@example.com", "serviceInterest": "x", "date": "2025-08-01", "time": "9:00"}`},
	}

	notifier := &recordingNotifier{}
	h := newTestHandler(notifier, nil)

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := doRequest(h, c.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}

	// Невалидные запросы не занимают слот и не шлют уведомлений
	assert.Equal(t, 0, notifier.calls)
	rec := doRequest(h, validBody)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_Handle_NotifierFailureDoesNotAffectResponse(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("smtp api is down")}
	metrics := &recordingMetrics{}
	h := newTestHandler(notifier, metrics)

	rec := doRequest(h, validBody)
	assert.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, 1, metrics.created)
	assert.Equal(t, 1, metrics.notificationFailures)
}

func TestHandler_Handle_NilMetricsAndNotifier(t *testing.T) {
	h := newTestHandler(nil, nil)

	rec := doRequest(h, validBody)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
