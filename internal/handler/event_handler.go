package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/everythingcs/backend/internal/model"
	"github.com/everythingcs/backend/internal/service"
	"github.com/everythingcs/backend/internal/validate"
)

// EventHandler handles analytics beacon hits. There is no human-facing form
// behind this endpoint, so no challenge verification step.
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates an EventHandler with the given service.
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// eventRequest is the expected JSON body for POST /api/events.
// Referrer carries no required rule: direct visits legitimately send "".
type eventRequest struct {
	Type     string `json:"type" validate:"required,oneof=load scroll end exit 10s 30s 60s"`
	Slug     string `json:"slug" validate:"required,max=512"`
	Referrer string `json:"referrer" validate:"omitempty,max=2048"`
}

// Track handles POST /api/events: decode, validate, derive the visitor
// fingerprint from edge metadata, persist.
func (h *EventHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, codeValidationError, "invalid JSON body")
		return
	}

	if verr := validate.Struct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, codeValidationError, verr.Fields)
		return
	}

	ev := &model.Event{
		Type:     req.Type,
		Slug:     req.Slug,
		Referrer: req.Referrer,
	}

	if err := h.eventService.Record(r.Context(), ev, requestMeta(r)); err != nil {
		slog.Error("event recording failed", "error", err, "slug", req.Slug)
		respondError(w, http.StatusInternalServerError, codeServerError, msgServerError)
		return
	}

	respondData(w, http.StatusCreated, "Event Submitted successfully")
}
