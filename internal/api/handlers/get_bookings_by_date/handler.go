package get_bookings_by_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/travelbuff/TB-ConciergeService/internal/api/handlers"
	"github.com/travelbuff/TB-ConciergeService/internal/service/bookings"
)

const (
	msgInvalidDate = "invalid date, expected YYYY-MM-DD"
)

// Handler обработчик получения бронирований на дату
type Handler struct {
	service BookingsService
	logger  Logger
}

// NewHandler создает новый Handler
func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает GET /api/bookings/date/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	result, err := h.service.GetByDate(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidDate):
			h.logger.Warn("GetBookingsByDate: invalid date %q: %v", date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GetBookingsByDate: service failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
