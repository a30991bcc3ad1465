package model

import "time"

// Query types accepted by the contact form. Submissions with any other
// value are rejected during validation.
const (
	QueryTypeBlog        = "blog"
	QueryTypeDMCA        = "dmca"
	QueryTypeSponsorship = "sponsorship"
	QueryTypePrivacy     = "privacy"
	QueryTypeOther       = "other"
)

// Query represents a message submitted via the contact form.
// BlogPostLink is only set for blog/dmca queries; IsResolved and
// HasReplied are maintained out-of-band by the site operator.
type Query struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Type         string    `json:"type"`
	Message      string    `json:"message"`
	BlogPostLink string    `json:"blog_post_link,omitempty"`
	IsResolved   bool      `json:"is_resolved"`
	HasReplied   bool      `json:"has_replied"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RequiresBlogPostLink reports whether this query type must reference a
// specific blog post.
func (q *Query) RequiresBlogPostLink() bool {
	return q.Type == QueryTypeBlog || q.Type == QueryTypeDMCA
}
