package handler

import (
	"encoding/json"
	"net/http"
)

// Error codes returned in the response envelope. Validation-class codes are
// caller-recoverable; server_error is not and carries no internal detail.
const (
	codeValidationError = "validation_error"
	codeCaptchaError    = "captcha_error"
	codeBlogPostLinkErr = "blog_post_link_error"
	codeMissingField    = "missing_field"
	codeServerError     = "server_error"
)

// Canonical user-facing messages.
const (
	msgCaptchaError = "Error with captcha. Please refresh and try again"
	msgServerError  = "Server Error"
)

type errorBody struct {
	Code string `json:"code"`
	// Message is a string for most codes and a field->message map for
	// validation errors.
	Message any `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// respondData writes the success envelope {"data":{"message":...}}.
func respondData(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"data": map[string]string{"message": message},
	})
}

// respondError writes the failure envelope {"error":{"code":...,"message":...}}.
func respondError(w http.ResponseWriter, status int, code string, message any) {
	writeJSON(w, status, map[string]any{
		"error": errorBody{Code: code, Message: message},
	})
}
