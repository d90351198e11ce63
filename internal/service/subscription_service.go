package service

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SubscriptionService struct {
	subRepo *repository.SubscriptionRepository
	achSvc  *AchievementService
	logger  *zap.Logger
}

func NewSubscriptionService(subRepo *repository.SubscriptionRepository, achSvc *AchievementService, logger *zap.Logger) *SubscriptionService {
	return &SubscriptionService{
		subRepo: subRepo,
		achSvc:  achSvc,
		logger:  logger,
	}
}

func (s *SubscriptionService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateSubscriptionRequest) (*dto.CreateSubscriptionResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	sub := &models.Subscription{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		Amount:    req.Amount,
		CreatedAt: time.Now(),
	}

	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	unlocked, err := s.achSvc.OnSubscriptionCreated(ctx, userID)
	if err != nil {
		s.logger.Warn("Achievement evaluation failed", zap.Error(err))
	}

	return &dto.CreateSubscriptionResponse{
		Subscription: dto.SubscriptionResponse{
			ID:     sub.ID.String(),
			Name:   sub.Name,
			Amount: sub.Amount,
		},
		Unlocked: unlocked,
	}, nil
}

func (s *SubscriptionService) List(ctx context.Context, userID uuid.UUID) ([]dto.SubscriptionResponse, error) {
	subscriptions, err := s.subRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SubscriptionResponse, 0, len(subscriptions))
	for _, sub := range subscriptions {
		out = append(out, dto.SubscriptionResponse{
			ID:     sub.ID.String(),
			Name:   sub.Name,
			Amount: sub.Amount,
		})
	}

	return out, nil
}

func (s *SubscriptionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	deleted, err := s.subRepo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
