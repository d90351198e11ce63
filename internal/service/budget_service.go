package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type budgetEntry struct {
	category string
	limit    int64
}

// parseBudgetEntries walks the fixed category catalog in order and parses
// each submitted limit. Malformed or negative amounts skip that category
// only; categories absent from the request are left untouched.
func parseBudgetEntries(raw map[string]string) (entries []budgetEntry, skipped []string) {
	for _, category := range models.BudgetCategories {
		value, ok := raw[category]
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}

		limit, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil || limit < 0 {
			skipped = append(skipped, category)
			continue
		}

		entries = append(entries, budgetEntry{category: category, limit: limit})
	}
	return entries, skipped
}

type BudgetService struct {
	budgetRepo *repository.BudgetRepository
	achSvc     *AchievementService
	logger     *zap.Logger
}

func NewBudgetService(budgetRepo *repository.BudgetRepository, achSvc *AchievementService, logger *zap.Logger) *BudgetService {
	return &BudgetService{
		budgetRepo: budgetRepo,
		achSvc:     achSvc,
		logger:     logger,
	}
}

// UpdateBatch upserts the submitted category limits. Partial success is the
// contract: valid categories commit even when others are skipped. Any
// completed batch fires the budget achievement rule.
func (s *BudgetService) UpdateBatch(ctx context.Context, userID uuid.UUID, req *dto.UpdateBudgetsRequest) (*dto.UpdateBudgetsResponse, error) {
	entries, skipped := parseBudgetEntries(req.Budgets)

	now := time.Now()
	for _, entry := range entries {
		budget := &models.Budget{
			ID:          uuid.New(),
			UserID:      userID,
			Category:    entry.category,
			LimitAmount: entry.limit,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.budgetRepo.Upsert(ctx, budget); err != nil {
			return nil, err
		}
	}

	unlocked, err := s.achSvc.OnBudgetsUpdated(ctx, userID)
	if err != nil {
		s.logger.Warn("Achievement evaluation failed", zap.Error(err))
	}

	return &dto.UpdateBudgetsResponse{
		Updated:  len(entries),
		Skipped:  skipped,
		Unlocked: unlocked,
	}, nil
}

func (s *BudgetService) List(ctx context.Context, userID uuid.UUID) ([]dto.BudgetResponse, error) {
	budgets, err := s.budgetRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BudgetResponse, 0, len(budgets))
	for _, budget := range budgets {
		out = append(out, dto.BudgetResponse{
			Category: budget.Category,
			Limit:    budget.LimitAmount,
		})
	}

	return out, nil
}
