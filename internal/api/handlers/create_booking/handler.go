package create_booking

import (
	"errors"
	"net/http"

	"github.com/travelbuff/TB-ConciergeService/internal/api/handlers"
	createBooking "github.com/travelbuff/TB-ConciergeService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "validation failed"
	msgInvalidDateOrTime  = "invalid date or time format"
	msgSlotTaken          = "time slot already booked"
)

// Handler обработчик создания бронирования
type Handler struct {
	useCase  CreateBookingUseCase
	notifier Notifier
	metrics  Metrics
	logger   Logger
}

// NewHandler создает новый Handler
// notifier и metrics могут быть nil
func NewHandler(useCase CreateBookingUseCase, notifier Notifier, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Handle обрабатывает POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("CreateBooking: failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.ValidateStruct(&req); details != nil {
		h.logger.Warn("CreateBooking: validation failed: %v", details)
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("CreateBooking: invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Info("CreateBooking: slot conflict for %s %s", ucReq.Date, ucReq.Time)
			if h.metrics != nil {
				h.metrics.IncSlotConflict()
			}
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("CreateBooking: invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("CreateBooking: use case failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.IncBookingCreated()
	}

	// Уведомление best-effort: ошибка отправки не влияет на ответ клиенту
	if h.notifier != nil {
		if err := h.notifier.SendBookingNotification(r.Context(), toDomainBooking(resp)); err != nil {
			h.logger.Error("CreateBooking: failed to send notification for booking %s: %v", resp.ID, err)
			if h.metrics != nil {
				h.metrics.IncNotificationFailure()
			}
		}
	}

	h.logger.Info("CreateBooking: created booking %s for slot %s %s", resp.ID, resp.Date, resp.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
