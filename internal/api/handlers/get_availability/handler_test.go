package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelbuff/TB-ConciergeService/internal/domain"
	bookingRepo "github.com/travelbuff/TB-ConciergeService/internal/infra/storage/booking"
	getAvailability "github.com/travelbuff/TB-ConciergeService/internal/usecase/get_availability"
	"github.com/travelbuff/TB-ConciergeService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testSlots = []types.TimeString{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

func newTestRouter(repo *bookingRepo.MemoryRepository) *mux.Router {
	uc := getAvailability.NewUseCase(repo, testSlots, nopLogger{})
	h := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/bookings/availability/{date}", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandler_Handle(t *testing.T) {
	repo := bookingRepo.NewMemoryRepository()
	router := newTestRouter(repo)

	_, err := repo.Create(context.Background(), &domain.Booking{
		Name:            "Anna Petrova",
		Email:           "anna@example.com",
		ServiceInterest: "luxury-travel",
		Date:            "2025-08-01",
		Time:            "10:00",
		Status:          domain.StatusPending,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/availability/2025-08-01", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "2025-08-01", resp.Date)
	assert.Equal(t, []string{"09:00", "11:00", "14:00", "15:00", "16:00"}, resp.AvailableSlots)
	assert.Equal(t, []string{"10:00"}, resp.BookedSlots)
}

func TestHandler_Handle_InvalidDate(t *testing.T) {
	router := newTestRouter(bookingRepo.NewMemoryRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/availability/not-a-date", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
