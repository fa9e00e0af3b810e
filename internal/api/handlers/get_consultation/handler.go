package get_consultation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/travelbuff/TB-ConciergeService/internal/api/handlers"
	"github.com/travelbuff/TB-ConciergeService/internal/service/content"
)

const (
	msgConsultationNotFound = "consultation not found"
)

// Handler обработчик получения запроса на консультацию по ID
type Handler struct {
	service ContentService
	logger  Logger
}

// NewHandler создает новый Handler
func NewHandler(service ContentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает GET /api/admin/consultations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	consultation, err := h.service.GetConsultation(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrConsultationNotFound):
			h.logger.Warn("GetConsultation: id=%s not found", id)
			handlers.RespondNotFound(w, msgConsultationNotFound)
		default:
			h.logger.Error("GetConsultation: service failed for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(consultation))
}
