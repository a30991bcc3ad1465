package handler

import (
	"net/http"

	"github.com/everythingcs/backend/internal/repository"
)

// Handler carries the shared dependencies for the plain endpoints
// (health check) and the CORS middleware.
type Handler struct {
	db          repository.DB
	frontendURL string
}

// New creates the base Handler. frontendURL is the origin allowed by CORS.
func New(db repository.DB, frontendURL string) *Handler {
	return &Handler{db: db, frontendURL: frontendURL}
}

// CORS restricts cross-origin access to the configured site origin.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
