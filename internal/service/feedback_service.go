package service

import (
	"context"

	"github.com/everythingcs/backend/internal/model"
	"github.com/everythingcs/backend/internal/repository"
)

// FeedbackService defines the business logic for reader feedback submissions.
type FeedbackService interface {
	// Submit stores a new feedback row. f.ID and f.CreatedAt are populated
	// by the implementation.
	Submit(ctx context.Context, f *model.Feedback) error
}

// feedbackServiceImpl is the production implementation of FeedbackService.
type feedbackServiceImpl struct {
	repo repository.FeedbackRepository
}

// NewFeedbackService creates a FeedbackService backed by the given repository.
func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackServiceImpl{repo: repo}
}

func (s *feedbackServiceImpl) Submit(ctx context.Context, f *model.Feedback) error {
	return s.repo.Insert(ctx, f)
}
