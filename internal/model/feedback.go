package model

import "time"

// Rating bounds for feedback submissions, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Feedback represents a per-post reader rating with an optional free-text
// message. Slug identifies the content item the feedback is about.
type Feedback struct {
	ID         int64     `json:"id"`
	Slug       string    `json:"slug"`
	Rating     int       `json:"rating"`
	Message    string    `json:"message,omitempty"`
	IsResolved bool      `json:"is_resolved"`
	CreatedAt  time.Time `json:"created_at"`
}
