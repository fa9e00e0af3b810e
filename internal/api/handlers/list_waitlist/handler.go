package list_waitlist

import (
	"net/http"

	"github.com/travelbuff/TB-ConciergeService/internal/api/handlers"
)

// Handler обработчик получения всех записей листа ожидания
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

// Handle обрабатывает GET /api/admin/waitlist
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListWaitlist(r.Context())
	if err != nil {
		h.logger.Error("ListWaitlist: service failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(entries))
}
