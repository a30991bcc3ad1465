package model

import "time"

// Event types emitted by the pageview/engagement beacon.
const (
	EventTypeLoad   = "load"
	EventTypeScroll = "scroll"
	EventTypeEnd    = "end"
	EventTypeExit   = "exit"
	EventType10s    = "10s"
	EventType30s    = "30s"
	EventType60s    = "60s"
)

// Event is a single analytics beacon hit for a content slug. Hash is the
// daily-rotating visitor fingerprint; there is no uniqueness constraint on
// it, deduplication happens at read time.
type Event struct {
	ID        int64     `json:"id"`
	Hash      string    `json:"hash"`
	Type      string    `json:"type"`
	Slug      string    `json:"slug"`
	Referrer  string    `json:"referrer"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	OS        string    `json:"os,omitempty"`
	Device    string    `json:"device,omitempty"`
	Browser   string    `json:"browser,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
