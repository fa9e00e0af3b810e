package list_testimonials

import (
	"net/http"

	"github.com/travelbuff/TB-ConciergeService/internal/api/handlers"
)

// Handler обработчик получения отзывов
//
// Один и тот же обработчик регистрируется дважды: публичный роут
// отдает только активные отзывы, административный - все
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

// Handle обрабатывает GET /api/testimonials и GET /api/admin/testimonials
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.service.ListTestimonials(r.Context(), h.activeOnly)
	if err != nil {
		h.logger.Error("ListTestimonials: service failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(testimonials))
}
