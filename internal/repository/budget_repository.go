package repository

import (
	"context"

	"fintrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BudgetRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBudgetRepository(db *pgxpool.Pool, logger *zap.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert inserts the budget or, when the (user_id, category) row already
// exists, replaces its limit. The unique index makes concurrent updates to
// the same category collapse into last-write-wins instead of duplicates.
func (r *BudgetRepository) Upsert(ctx context.Context, budget *models.Budget) error {
	query := squirrel.Insert("budgets").
		Columns("id", "user_id", "category", "limit_amount", "created_at", "updated_at").
		Values(budget.ID, budget.UserID, budget.Category, budget.LimitAmount, budget.CreatedAt, budget.UpdatedAt).
		Suffix("ON CONFLICT (user_id, category) DO UPDATE SET limit_amount = EXCLUDED.limit_amount, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListByUser returns the user's budgets in creation order. The budget
// evaluator's output order follows this.
func (r *BudgetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Budget, error) {
	query := squirrel.Select("id", "user_id", "category", "limit_amount", "created_at", "updated_at").
		From("budgets").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []*models.Budget
	for rows.Next() {
		var budget models.Budget
		if err := rows.Scan(&budget.ID, &budget.UserID, &budget.Category, &budget.LimitAmount, &budget.CreatedAt, &budget.UpdatedAt); err != nil {
			return nil, err
		}
		budgets = append(budgets, &budget)
	}

	return budgets, rows.Err()
}
