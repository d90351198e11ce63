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

const monthLayout = "2006-01"

// ParseMonth parses a "YYYY-MM" filter. Anything malformed falls back to
// the current calendar month instead of failing the request.
func ParseMonth(raw string, now time.Time) (int, time.Month) {
	if t, err := time.Parse(monthLayout, raw); err == nil {
		return t.Year(), t.Month()
	}
	return now.Year(), now.Month()
}

// FireProgress is the percentage of the FIRE target covered by net worth,
// capped at 100. Zero when the target is unset or net worth is negative.
func FireProgress(netWorth, target int64) int {
	if target <= 0 || netWorth <= 0 {
		return 0
	}
	progress := int(100 * netWorth / target)
	if progress > 100 {
		progress = 100
	}
	return progress
}

type LedgerService struct {
	userRepo *repository.UserRepository
	txRepo   *repository.TransactionRepository
	achSvc   *AchievementService
	logger   *zap.Logger
}

func NewLedgerService(
	userRepo *repository.UserRepository,
	txRepo *repository.TransactionRepository,
	achSvc *AchievementService,
	logger *zap.Logger,
) *LedgerService {
	return &LedgerService{
		userRepo: userRepo,
		txRepo:   txRepo,
		achSvc:   achSvc,
		logger:   logger,
	}
}

// CreateTransaction validates and stores a ledger entry, then evaluates
// achievement rules for it. An achievement failure is logged, not surfaced:
// the write has already committed.
func (s *LedgerService) CreateTransaction(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.CreateTransactionResponse, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	txType := models.TransactionType(req.Type)
	if txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
		return nil, fmt.Errorf("%w: type must be income or expense", ErrValidation)
	}

	mood := models.MoodNeutral
	if req.Mood != "" {
		mood = models.Mood(req.Mood)
		if mood != models.MoodHappy && mood != models.MoodNeutral && mood != models.MoodRegret {
			return nil, fmt.Errorf("%w: unknown mood %q", ErrValidation, req.Mood)
		}
	}

	occurredOn := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
		}
		occurredOn = parsed
	}

	tx := &models.Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		OccurredOn:   occurredOn,
		Type:         txType,
		Amount:       req.Amount,
		MainCategory: req.MainCategory,
		ItemName:     req.ItemName,
		Note:         req.Note,
		Mood:         mood,
		CreatedAt:    time.Now(),
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	count, err := s.txRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	unlocked, err := s.achSvc.OnTransactionCreated(ctx, userID, tx, count)
	if err != nil {
		s.logger.Warn("Achievement evaluation failed", zap.Error(err))
	}

	return &dto.CreateTransactionResponse{
		Transaction: toTransactionResponse(tx),
		Unlocked:    unlocked,
	}, nil
}

// ListMonth returns one calendar month of transactions, newest first,
// together with the lifetime dashboard figures.
func (s *LedgerService) ListMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*dto.LedgerResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	transactions, err := s.txRepo.ListMonthByDate(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	totalIncome, err := s.txRepo.SumByType(ctx, userID, models.TransactionTypeIncome)
	if err != nil {
		return nil, err
	}
	totalExpense, err := s.txRepo.SumByType(ctx, userID, models.TransactionTypeExpense)
	if err != nil {
		return nil, err
	}

	netWorth := totalIncome - totalExpense

	items := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		items = append(items, toTransactionResponse(tx))
	}

	return &dto.LedgerResponse{
		Month:        fmt.Sprintf("%04d-%02d", year, month),
		Transactions: items,
		Dashboard: dto.DashboardResponse{
			TotalIncome:  totalIncome,
			TotalExpense: totalExpense,
			NetWorth:     netWorth,
			FireTarget:   user.FireTarget,
			FireProgress: FireProgress(netWorth, user.FireTarget),
		},
	}, nil
}

// DeleteTransaction removes the row only when the acting user owns it.
// Unknown ids and foreign rows both report ErrNotFound and change nothing.
func (s *LedgerService) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	deleted, err := s.txRepo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
