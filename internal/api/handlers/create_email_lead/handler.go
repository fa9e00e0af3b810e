package create_email_lead

import (
	"net/http"

	"github.com/travelbuff/TB-ConciergeService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "validation failed"
)

// Handler обработчик создания email-лида
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

// Handle обрабатывает POST /api/email-leads
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateEmailLeadRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("CreateEmailLead: failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.ValidateStruct(&req); details != nil {
		h.logger.Warn("CreateEmailLead: validation failed: %v", details)
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	created, err := h.service.CreateEmailLead(r.Context(), req.ToDomain())
	if err != nil {
		h.logger.Error("CreateEmailLead: service failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}
