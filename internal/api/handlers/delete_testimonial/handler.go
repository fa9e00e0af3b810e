package delete_testimonial

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/travelbuff/TB-ConciergeService/internal/api/handlers"
	"github.com/travelbuff/TB-ConciergeService/internal/service/content"
)

const (
	msgTestimonialNotFound = "testimonial not found"
)

// Handler обработчик удаления отзыва
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

// Handle обрабатывает DELETE /api/admin/testimonials/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteTestimonial(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, content.ErrTestimonialNotFound):
			h.logger.Warn("DeleteTestimonial: id=%s not found", id)
			handlers.RespondNotFound(w, msgTestimonialNotFound)
		default:
			h.logger.Error("DeleteTestimonial: service failed for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
