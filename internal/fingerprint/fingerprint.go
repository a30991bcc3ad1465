// Package fingerprint derives the daily-rotating visitor fingerprint used
// to approximately deduplicate analytics events. The digest is keyed with a
// server secret plus the current UTC date, so the same visitor hashes
// identically within a calendar day and differently across days, and the
// raw IP/identity is never stored.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/everythingcs/backend/internal/model"
)

// Hasher computes visitor fingerprints. Safe for concurrent use.
type Hasher struct {
	secret string
	now    func() time.Time
}

// New creates a Hasher keyed with the given secret. The secret must be
// non-empty; config validation enforces that at startup.
func New(secret string) *Hasher {
	return &Hasher{secret: secret, now: time.Now}
}

// Hash returns the fingerprint for the given request metadata as a compact
// lowercase hex string. The SHA-256 step makes the digest non-reversible;
// the xxhash step keeps the stored value short. This is an anti-duplicate
// signal, not a security boundary.
func (h *Hasher) Hash(meta model.RequestMeta) string {
	payload, _ := json.Marshal(meta)
	sum := sha256.Sum256(append(payload, h.dayKey()...))
	return strconv.FormatUint(xxhash.Sum64String(hex.EncodeToString(sum[:])), 16)
}

// dayKey combines the secret with the current UTC date so the key rotates
// once per UTC day.
func (h *Hasher) dayKey() []byte {
	day := h.now().UTC()
	return []byte(fmt.Sprintf("%s%d-%d-%d", h.secret, day.Day(), int(day.Month()), day.Year()))
}
