package update_testimonial

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/travelbuff/TB-ConciergeService/internal/api/handlers"
	"github.com/travelbuff/TB-ConciergeService/internal/service/content"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgValidationFailed    = "validation failed"
	msgTestimonialNotFound = "testimonial not found"
)

// Handler обработчик частичного обновления отзыва
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

// Handle обрабатывает PATCH /api/admin/testimonials/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateTestimonialRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("UpdateTestimonial: failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.ValidateStruct(&req); details != nil {
		h.logger.Warn("UpdateTestimonial: validation failed: %v", details)
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	updated, err := h.service.UpdateTestimonial(r.Context(), id, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, content.ErrTestimonialNotFound):
			h.logger.Warn("UpdateTestimonial: id=%s not found", id)
			handlers.RespondNotFound(w, msgTestimonialNotFound)
		default:
			h.logger.Error("UpdateTestimonial: service failed for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}
