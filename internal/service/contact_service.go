package service

import (
	"context"
	"errors"

	"github.com/everythingcs/backend/internal/model"
)

// ErrBlogPostLinkRequired is returned when a blog/dmca query omits the
// blog post link.
var ErrBlogPostLinkRequired = errors.New("blog post link is required")

// ErrBlogPostLinkInvalid is returned when the blog post link is not rooted
// at the site's own blog path.
var ErrBlogPostLinkInvalid = errors.New("blog post link is invalid")

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact query. q.ID and the timestamps are
	// populated by the implementation. Blog/dmca queries must carry a
	// blog post link rooted at the configured blog base URL.
	Submit(ctx context.Context, q *model.Query) error
}
