package list_partners

import (
	"net/http"

	"github.com/travelbuff/TB-ConciergeService/internal/api/handlers"
)

// Handler обработчик получения партнеров
//
// Один и тот же обработчик регистрируется дважды: публичный роут
// отдает только активных партнеров, административный - всех
type Handler struct {
	service    ContentService
	activeOnly bool
	logger     Logger
}

// NewHandler создает новый Handler
func NewHandler(service ContentService, activeOnly bool, logger Logger) *Handler {
	return &Handler{
		service:    service,
		activeOnly: activeOnly,
		logger:     logger,
	}
}

// Handle обрабатывает GET /api/partners и GET /api/admin/partners
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	partners, err := h.service.ListPartners(r.Context(), h.activeOnly)
	if err != nil {
		h.logger.Error("ListPartners: service failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(partners))
}
