package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/everythingcs/backend/internal/model"
	"github.com/everythingcs/backend/internal/service"
	"github.com/everythingcs/backend/internal/validate"
	"github.com/everythingcs/backend/pkg/turnstile"
)

// FeedbackHandler handles per-post reader feedback submissions.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
	verifier        turnstile.Verifier
}

// NewFeedbackHandler creates a FeedbackHandler with the given service and
// challenge verifier.
func NewFeedbackHandler(feedbackService service.FeedbackService, verifier turnstile.Verifier) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService, verifier: verifier}
}

// feedbackRequest is the expected JSON body for POST /api/feedback.
// Rating is a pointer so an absent field is distinguishable from 0.
type feedbackRequest struct {
	Slug         string `json:"slug" validate:"required,max=512"`
	Rating       *int   `json:"rating" validate:"required,min=1,max=5"`
	Message      string `json:"message" validate:"omitempty,max=5000"`
	CaptchaToken string `json:"cfTurnstileRes" validate:"required"`
}

// Submit handles POST /api/feedback: decode, validate, verify the
// challenge, persist. Absent required fields map to missing_field;
// out-of-range values map to validation_error.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, codeValidationError, "invalid JSON body")
		return
	}

	if verr := validate.Struct(&req); verr != nil {
		code := codeValidationError
		if verr.MissingOnly() {
			code = codeMissingField
		}
		respondError(w, http.StatusBadRequest, code, verr.Fields)
		return
	}

	if err := h.verifier.Verify(r.Context(), req.CaptchaToken, clientIP(r)); err != nil {
		if errors.Is(err, turnstile.ErrNotConfigured) {
			slog.Error("turnstile secret not configured", "error", err)
			respondError(w, http.StatusInternalServerError, codeServerError, msgServerError)
			return
		}
		respondError(w, http.StatusBadRequest, codeCaptchaError, msgCaptchaError)
		return
	}

	f := &model.Feedback{
		Slug:    req.Slug,
		Rating:  *req.Rating,
		Message: req.Message,
	}

	if err := h.feedbackService.Submit(r.Context(), f); err != nil {
		slog.Error("feedback submission failed", "error", err)
		respondError(w, http.StatusInternalServerError, codeServerError, msgServerError)
		return
	}

	respondData(w, http.StatusCreated, "Feedback Submitted successfully")
}
