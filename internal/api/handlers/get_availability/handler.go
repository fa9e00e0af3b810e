package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/travelbuff/TB-ConciergeService/internal/api/handlers"
	getAvailability "github.com/travelbuff/TB-ConciergeService/internal/usecase/get_availability"
)

const (
	msgInvalidDate = "invalid date, expected YYYY-MM-DD"
)

// Handler обработчик получения доступности слотов
type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

// NewHandler создает новый Handler
func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle обрабатывает GET /api/bookings/availability/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	resp, err := h.useCase.Execute(r.Context(), &getAvailability.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GetAvailability: invalid date %q: %v", date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GetAvailability: use case failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
