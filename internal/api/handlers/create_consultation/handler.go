package create_consultation

import (
	"net/http"

	"github.com/travelbuff/TB-ConciergeService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "validation failed"
)

// Handler обработчик создания запроса на консультацию
type Handler struct {
	service  ContentService
	notifier Notifier
	metrics  Metrics
	logger   Logger
}

// NewHandler создает новый Handler
// notifier и metrics могут быть nil
func NewHandler(service ContentService, notifier Notifier, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		service:  service,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Handle обрабатывает POST /api/consultations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateConsultationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("CreateConsultation: failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.ValidateStruct(&req); details != nil {
		h.logger.Warn("CreateConsultation: validation failed: %v", details)
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	created, err := h.service.CreateConsultation(r.Context(), req.ToDomain())
	if err != nil {
		h.logger.Error("CreateConsultation: service failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Уведомление best-effort: ошибка отправки не влияет на ответ клиенту
	if h.notifier != nil {
		if err := h.notifier.SendConsultationNotification(r.Context(), created); err != nil {
			h.logger.Error("CreateConsultation: failed to send notification for %s: %v", created.ID, err)
			if h.metrics != nil {
				h.metrics.IncNotificationFailure()
			}
		}
	}

	handlers.RespondJSON(w, http.StatusCreated, FromDomain(created))
}
