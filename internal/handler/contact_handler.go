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

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
	verifier       turnstile.Verifier
}

// NewContactHandler creates a ContactHandler with the given service and
// challenge verifier.
func NewContactHandler(contactService service.ContactService, verifier turnstile.Verifier) *ContactHandler {
	return &ContactHandler{contactService: contactService, verifier: verifier}
}

// contactRequest is the expected JSON body for POST /api/contact.
type contactRequest struct {
	Name         string `json:"name" validate:"required,max=256"`
	Email        string `json:"email" validate:"required,email"`
	Type         string `json:"type" validate:"required,oneof=blog dmca sponsorship privacy other"`
	BlogPostLink string `json:"blogPostLink" validate:"omitempty,max=2048"`
	Message      string `json:"message" validate:"required,max=5000"`
	CaptchaToken string `json:"cfTurnstileRes" validate:"required"`
}

// Submit handles POST /api/contact. The pipeline is strictly sequential:
// decode, validate, verify the challenge, then persist. The first failure
// terminates the request; the row is only written after every check passes.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, codeValidationError, "invalid JSON body")
		return
	}

	if verr := validate.Struct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, codeValidationError, verr.Fields)
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

	q := &model.Query{
		Name:         req.Name,
		Email:        req.Email,
		Type:         req.Type,
		Message:      req.Message,
		BlogPostLink: req.BlogPostLink,
	}

	if err := h.contactService.Submit(r.Context(), q); err != nil {
		switch {
		case errors.Is(err, service.ErrBlogPostLinkRequired):
			respondError(w, http.StatusBadRequest, codeBlogPostLinkErr, "Blog post link is required")
		case errors.Is(err, service.ErrBlogPostLinkInvalid):
			respondError(w, http.StatusBadRequest, codeBlogPostLinkErr, "Blog post link is invalid")
		default:
			slog.Error("contact submission failed", "error", err)
			respondError(w, http.StatusInternalServerError, codeServerError, msgServerError)
		}
		return
	}

	respondData(w, http.StatusCreated, "Contact Submitted successfully")
}
