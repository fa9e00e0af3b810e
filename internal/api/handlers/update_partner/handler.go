package update_partner

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/travelbuff/TB-ConciergeService/internal/api/handlers"
	"github.com/travelbuff/TB-ConciergeService/internal/service/content"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "validation failed"
	msgPartnerNotFound    = "partner not found"
)

// Handler обработчик частичного обновления партнера
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

// Handle обрабатывает PATCH /api/admin/partners/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdatePartnerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("UpdatePartner: failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.ValidateStruct(&req); details != nil {
		h.logger.Warn("UpdatePartner: validation failed: %v", details)
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	updated, err := h.service.UpdatePartner(r.Context(), id, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, content.ErrPartnerNotFound):
			h.logger.Warn("UpdatePartner: id=%s not found", id)
			handlers.RespondNotFound(w, msgPartnerNotFound)
		default:
			h.logger.Error("UpdatePartner: service failed for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}
