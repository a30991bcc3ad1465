package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	var fromCtx string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = requestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	RequestID(inner).ServeHTTP(rec, req)

	if fromCtx == "" {
		t.Error("expected a request id in the context")
	}
	if rec.Header().Get("X-Request-ID") != fromCtx {
		t.Error("expected the response header to carry the same id")
	}
}

func TestRequestID_HonorsEdgeHeader(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "edge-id-7")
	rec := httptest.NewRecorder()
	RequestID(inner).ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "edge-id-7" {
		t.Errorf("expected edge-supplied id to be kept, got %q", got)
	}
}

func TestSecurityHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	SecurityHeaders(inner).ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("expected nosniff, got %q", got)
	}
	if rec.Header().Get("X-Frame-Options") == "" {
		t.Error("expected X-Frame-Options to be set")
	}
}

func TestRateLimiter_BlocksAboveLimit(t *testing.T) {
	rl := NewRateLimiter(2)
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	wrapped := rl.Middleware(inner)

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/events", nil)
		req.Header.Set("CF-Connecting-IP", "203.0.113.7")
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)
		return rec.Code
	}

	if do() != http.StatusCreated || do() != http.StatusCreated {
		t.Fatal("first two requests should pass")
	}
	if got := do(); got != http.StatusTooManyRequests {
		t.Errorf("third request should be limited, got %d", got)
	}
}

func TestRateLimiter_WindowsArePerIP(t *testing.T) {
	rl := NewRateLimiter(1)
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	wrapped := rl.Middleware(inner)

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/events", nil)
		req.Header.Set("CF-Connecting-IP", ip)
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)
		return rec.Code
	}

	if do("203.0.113.1") != http.StatusOK {
		t.Error("first ip should pass")
	}
	if do("203.0.113.2") != http.StatusOK {
		t.Error("second ip has its own window")
	}
	if do("203.0.113.1") != http.StatusTooManyRequests {
		t.Error("first ip should now be limited")
	}
}

func TestClientIP_Precedence(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.1:54321"

	if got := clientIP(req); got != "198.51.100.1" {
		t.Errorf("expected RemoteAddr fallback, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := clientIP(req); got != "203.0.113.9" {
		t.Errorf("expected first X-Forwarded-For entry, got %q", got)
	}

	req.Header.Set("CF-Connecting-IP", "203.0.113.7")
	if got := clientIP(req); got != "203.0.113.7" {
		t.Errorf("expected CF-Connecting-IP to win, got %q", got)
	}
}

// ---------------------------------------------------------------------------
// Health endpoint
// ---------------------------------------------------------------------------

type pingStub struct {
	err error
}

func (p pingStub) Ping(ctx context.Context) error { return p.err }

func TestHealth_OK(t *testing.T) {
	h := New(pingStub{}, "https://everythingcs.dev")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHealth_Unhealthy(t *testing.T) {
	h := New(pingStub{err: errors.New("down")}, "https://everythingcs.dev")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := New(pingStub{}, "https://everythingcs.dev")
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight must not reach the inner handler")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.CORS(inner).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://everythingcs.dev" {
		t.Errorf("expected configured origin, got %q", got)
	}
}
