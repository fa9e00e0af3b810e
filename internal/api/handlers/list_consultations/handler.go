package list_consultations

import (
	"net/http"

	"github.com/travelbuff/TB-ConciergeService/internal/api/handlers"
)

// Handler обработчик получения всех запросов на консультации
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

// Handle обрабатывает GET /api/admin/consultations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	consultations, err := h.service.ListConsultations(r.Context())
	if err != nil {
		h.logger.Error("ListConsultations: service failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(consultations))
}
