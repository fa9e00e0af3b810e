package list_email_leads

import (
	"net/http"

	"github.com/travelbuff/TB-ConciergeService/internal/api/handlers"
)

// Handler обработчик получения всех email-лидов
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

// Handle обрабатывает GET /api/admin/email-leads
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	leads, err := h.service.ListEmailLeads(r.Context())
	if err != nil {
		h.logger.Error("ListEmailLeads: service failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(leads))
}
