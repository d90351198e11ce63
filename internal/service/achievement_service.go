package service

import (
	"context"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LedgerAction names the user action that triggered achievement evaluation.
type LedgerAction string

const (
	ActionTransactionCreated  LedgerAction = "transaction_created"
	ActionSubscriptionCreated LedgerAction = "subscription_created"
	ActionBudgetsUpdated      LedgerAction = "budgets_updated"
)

type AchievementService struct {
	achRepo *repository.AchievementRepository
	logger  *zap.Logger
}

func NewAchievementService(achRepo *repository.AchievementRepository, logger *zap.Logger) *AchievementService {
	return &AchievementService{
		achRepo: achRepo,
		logger:  logger,
	}
}

func defaultCatalog(now time.Time) []*models.Achievement {
	entries := []struct {
		code, name, desc, icon string
	}{
		{models.AchievementFirstEntry, "記帳新手", "記下你的第一筆帳", "fa-baby"},
		{models.AchievementFrugal, "省錢達人", "單筆支出小於 50 元", "fa-piggy-bank"},
		{models.AchievementBigEarner, "大戶人家", "單筆收入超過 5000 元", "fa-crown"},
		{models.AchievementSubscriptionManager, "訂閱管理者", "新增一筆訂閱服務", "fa-calendar-check"},
		{models.AchievementBudgetGuardian, "預算守門員", "設定你的第一個預算", "fa-shield-alt"},
	}

	catalog := make([]*models.Achievement, 0, len(entries))
	for _, e := range entries {
		catalog = append(catalog, &models.Achievement{
			ID:          uuid.New(),
			Code:        e.code,
			Name:        e.name,
			Description: e.desc,
			Icon:        e.icon,
			CreatedAt:   now,
		})
	}
	return catalog
}

// SeedCatalog writes the fixed achievement catalog, keeping rows that
// already exist. Run once at startup, independent of any request.
func (s *AchievementService) SeedCatalog(ctx context.Context) error {
	if err := s.achRepo.UpsertCatalog(ctx, defaultCatalog(time.Now())); err != nil {
		return err
	}
	s.logger.Info("Achievement catalog seeded")
	return nil
}

// unlockCodes returns the achievement codes an action satisfies. Rules are
// independent: one action may unlock several.
func unlockCodes(action LedgerAction, tx *models.Transaction, lifetimeCount int64) []string {
	var codes []string

	switch action {
	case ActionTransactionCreated:
		if tx == nil {
			return nil
		}
		if lifetimeCount == 1 {
			codes = append(codes, models.AchievementFirstEntry)
		}
		if tx.Type == models.TransactionTypeExpense && tx.Amount < 50 {
			codes = append(codes, models.AchievementFrugal)
		}
		if tx.Type == models.TransactionTypeIncome && tx.Amount > 5000 {
			codes = append(codes, models.AchievementBigEarner)
		}
	case ActionSubscriptionCreated:
		codes = append(codes, models.AchievementSubscriptionManager)
	case ActionBudgetsUpdated:
		codes = append(codes, models.AchievementBudgetGuardian)
	}

	return codes
}

// OnTransactionCreated evaluates the transaction rules. lifetimeCount is the
// user's total transaction count after the insert.
func (s *AchievementService) OnTransactionCreated(ctx context.Context, userID uuid.UUID, tx *models.Transaction, lifetimeCount int64) ([]string, error) {
	return s.grant(ctx, userID, unlockCodes(ActionTransactionCreated, tx, lifetimeCount))
}

func (s *AchievementService) OnSubscriptionCreated(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return s.grant(ctx, userID, unlockCodes(ActionSubscriptionCreated, nil, 0))
}

func (s *AchievementService) OnBudgetsUpdated(ctx context.Context, userID uuid.UUID) ([]string, error) {
	return s.grant(ctx, userID, unlockCodes(ActionBudgetsUpdated, nil, 0))
}

// grant inserts one user-achievement row per code and returns the display
// names of those actually granted. The unique index absorbs duplicates, so a
// re-grant is silent rather than an error.
func (s *AchievementService) grant(ctx context.Context, userID uuid.UUID, codes []string) ([]string, error) {
	var unlocked []string

	for _, code := range codes {
		ach, err := s.achRepo.GetByCode(ctx, code)
		if err != nil {
			if repository.IsNotFound(err) {
				s.logger.Warn("Achievement missing from catalog", zap.String("code", code))
				continue
			}
			return unlocked, err
		}

		granted, err := s.achRepo.Grant(ctx, &models.UserAchievement{
			ID:            uuid.New(),
			UserID:        userID,
			AchievementID: ach.ID,
			EarnedAt:      time.Now(),
		})
		if err != nil {
			return unlocked, err
		}

		if granted {
			s.logger.Info("Achievement unlocked",
				zap.String("user_id", userID.String()),
				zap.String("code", code),
			)
			unlocked = append(unlocked, ach.Name)
		}
	}

	return unlocked, nil
}

// ListForUser returns the full catalog with a per-user unlocked flag.
func (s *AchievementService) ListForUser(ctx context.Context, userID uuid.UUID) ([]dto.AchievementResponse, error) {
	catalog, err := s.achRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	earned, err := s.achRepo.ListEarnedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AchievementResponse, 0, len(catalog))
	for _, ach := range catalog {
		out = append(out, dto.AchievementResponse{
			Code:        ach.Code,
			Name:        ach.Name,
			Description: ach.Description,
			Icon:        ach.Icon,
			Unlocked:    earned[ach.ID],
		})
	}

	return out, nil
}
