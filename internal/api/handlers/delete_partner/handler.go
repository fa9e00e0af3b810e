package delete_partner

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/travelbuff/TB-ConciergeService/internal/api/handlers"
	"github.com/travelbuff/TB-ConciergeService/internal/service/content"
)

const (
	msgPartnerNotFound = "partner not found"
)

// Handler обработчик удаления партнера
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

// Handle обрабатывает DELETE /api/admin/partners/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.DeletePartner(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, content.ErrPartnerNotFound):
			h.logger.Warn("DeletePartner: id=%s not found", id)
			handlers.RespondNotFound(w, msgPartnerNotFound)
		default:
			h.logger.Error("DeletePartner: service failed for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
