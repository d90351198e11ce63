package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FeedbackService struct {
	feedbackRepo *repository.FeedbackRepository
	logger       *zap.Logger
}

func NewFeedbackService(feedbackRepo *repository.FeedbackRepository, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// Submit stores a feedback message. Feedback is write-only for the app;
// nothing reads it back.
func (s *FeedbackService) Submit(ctx context.Context, userID uuid.UUID, message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}

	return s.feedbackRepo.Create(ctx, &models.Feedback{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now(),
	})
}
