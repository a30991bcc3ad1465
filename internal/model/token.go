package model

import "time"

// Token is an opaque token with an expiry. The submission pipeline neither
// issues nor consumes tokens; the table is a passive lookup surface.
type Token struct {
	ID        int64     `json:"id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
