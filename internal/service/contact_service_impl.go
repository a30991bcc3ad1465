package service

import (
	"context"
	"strings"

	"github.com/everythingcs/backend/internal/model"
	"github.com/everythingcs/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo        repository.QueryRepository
	blogBaseURL string
}

// NewContactService creates a ContactService backed by the given repository.
// blogBaseURL is the canonical prefix a blogPostLink must start with.
func NewContactService(repo repository.QueryRepository, blogBaseURL string) ContactService {
	return &contactServiceImpl{repo: repo, blogBaseURL: blogBaseURL}
}

// Submit enforces the blog-post-link invariant and persists the query.
// The insert is the last step; nothing is written when the invariant fails.
func (s *contactServiceImpl) Submit(ctx context.Context, q *model.Query) error {
	if q.RequiresBlogPostLink() {
		link := strings.TrimSpace(q.BlogPostLink)
		if link == "" {
			return ErrBlogPostLinkRequired
		}
		if !strings.HasPrefix(link, s.blogBaseURL) {
			return ErrBlogPostLinkInvalid
		}
		q.BlogPostLink = link
	} else {
		// The link is only meaningful for blog/dmca queries.
		q.BlogPostLink = ""
	}
	return s.repo.Insert(ctx, q)
}
