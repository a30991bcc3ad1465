package service

import (
	"context"
	"strings"

	"github.com/mileusna/useragent"

	"github.com/everythingcs/backend/internal/model"
	"github.com/everythingcs/backend/internal/repository"
)

// EventService defines the business logic for analytics beacon events.
type EventService interface {
	// Record enriches ev with browser descriptors and the daily visitor
	// fingerprint derived from meta, then persists it.
	Record(ctx context.Context, ev *model.Event, meta model.RequestMeta) error
}

// FingerprintHasher derives the daily visitor fingerprint.
// *fingerprint.Hasher satisfies it.
type FingerprintHasher interface {
	Hash(meta model.RequestMeta) string
}

// eventServiceImpl is the production implementation of EventService.
type eventServiceImpl struct {
	repo   repository.EventRepository
	hasher FingerprintHasher
}

// NewEventService creates an EventService backed by the given repository
// and fingerprint hasher.
func NewEventService(repo repository.EventRepository, hasher FingerprintHasher) EventService {
	return &eventServiceImpl{repo: repo, hasher: hasher}
}

// Record fills in geo and browser descriptors from the edge metadata and
// stores the event. A missing user agent leaves the descriptors empty; the
// row is still persisted.
func (s *eventServiceImpl) Record(ctx context.Context, ev *model.Event, meta model.RequestMeta) error {
	ev.Country = meta.Country
	ev.City = meta.City

	if meta.UserAgent != "" {
		ua := useragent.Parse(meta.UserAgent)
		ev.OS = strings.TrimSpace(ua.OS + " " + ua.OSVersion)
		ev.Browser = strings.TrimSpace(ua.Name + " " + ua.Version)
		ev.Device = deviceType(ua)
	}

	ev.Hash = s.hasher.Hash(meta)
	return s.repo.Insert(ctx, ev)
}

// deviceType buckets a parsed user agent into the coarse device classes the
// analytics dashboard groups by.
func deviceType(ua useragent.UserAgent) string {
	switch {
	case ua.Bot:
		return "bot"
	case ua.Mobile:
		return "mobile"
	case ua.Tablet:
		return "tablet"
	case ua.Desktop:
		return "desktop"
	}
	return "unknown"
}
