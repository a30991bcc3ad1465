package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/everythingcs/backend/internal/model"
)

type mockEventService struct {
	recordFunc func(ctx context.Context, ev *model.Event, meta model.RequestMeta) error
}

func (m *mockEventService) Record(ctx context.Context, ev *model.Event, meta model.RequestMeta) error {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, ev, meta)
	}
	return nil
}

// ---------------------------------------------------------------------------
// POST /api/events tests
// ---------------------------------------------------------------------------

func TestEventHandler_Track_Success(t *testing.T) {
	var capturedEv *model.Event
	var capturedMeta model.RequestMeta
	mock := &mockEventService{
		recordFunc: func(ctx context.Context, ev *model.Event, meta model.RequestMeta) error {
			capturedEv = ev
			capturedMeta = meta
			return nil
		},
	}
	h := NewEventHandler(mock)

	body := `{"type":"load","slug":"my-post","referrer":"https://duckduckgo.com/"}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) Firefox/127.0")
	req.Header.Set("CF-Connecting-IP", "203.0.113.7")
	req.Header.Set("CF-IPCountry", "DE")
	req.Header.Set("CF-IPCity", "Berlin")
	req.Header.Set("CF-Timezone", "Europe/Berlin")
	rec := httptest.NewRecorder()
	h.Track(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if got := successMessage(t, rec); got != "Event Submitted successfully" {
		t.Errorf("unexpected success message %q", got)
	}
	if capturedEv == nil {
		t.Fatal("expected Record to be called")
	}
	if capturedEv.Type != "load" || capturedEv.Slug != "my-post" {
		t.Errorf("unexpected event: %+v", capturedEv)
	}
	if capturedMeta.IP != "203.0.113.7" || capturedMeta.Country != "DE" || capturedMeta.City != "Berlin" {
		t.Errorf("expected edge metadata to be extracted, got %+v", capturedMeta)
	}
}

func TestEventHandler_Track_MissingEdgeMetadataDefaultsEmpty(t *testing.T) {
	var capturedMeta model.RequestMeta
	mock := &mockEventService{
		recordFunc: func(ctx context.Context, ev *model.Event, meta model.RequestMeta) error {
			capturedMeta = meta
			return nil
		},
	}
	h := NewEventHandler(mock)

	rec := postJSON(h.Track, "/api/events", `{"type":"end","slug":"my-post","referrer":""}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if capturedMeta.Country != "" || capturedMeta.City != "" || capturedMeta.Timezone != "" {
		t.Errorf("expected empty defaults without edge headers, got %+v", capturedMeta)
	}
	if capturedMeta.IP == "" {
		t.Error("expected IP fallback from RemoteAddr")
	}
}

func TestEventHandler_Track_InvalidType(t *testing.T) {
	mock := &mockEventService{
		recordFunc: func(ctx context.Context, ev *model.Event, meta model.RequestMeta) error {
			t.Error("Record must not be called for invalid input")
			return nil
		},
	}
	h := NewEventHandler(mock)

	rec := postJSON(h.Track, "/api/events", `{"type":"hover","slug":"my-post","referrer":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "validation_error" {
		t.Errorf("expected validation_error, got %q", code)
	}
}

func TestEventHandler_Track_AllEventTypesAccepted(t *testing.T) {
	for _, typ := range []string{"load", "scroll", "end", "exit", "10s", "30s", "60s"} {
		h := NewEventHandler(&mockEventService{})
		rec := postJSON(h.Track, "/api/events", `{"type":"`+typ+`","slug":"s","referrer":""}`)
		if rec.Code != http.StatusCreated {
			t.Errorf("type %q should be accepted, got %d", typ, rec.Code)
		}
	}
}

func TestEventHandler_Track_StorageFault(t *testing.T) {
	mock := &mockEventService{
		recordFunc: func(ctx context.Context, ev *model.Event, meta model.RequestMeta) error {
			return errors.New("insert failed")
		},
	}
	h := NewEventHandler(mock)

	rec := postJSON(h.Track, "/api/events", `{"type":"load","slug":"s","referrer":""}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "server_error" {
		t.Errorf("expected server_error, got %q", code)
	}
}
