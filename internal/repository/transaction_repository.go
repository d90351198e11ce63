package repository

import (
	"context"
	"time"

	"fintrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var transactionColumns = []string{"id", "user_id", "occurred_on", "type", "amount", "main_category", "item_name", "note", "mood", "created_at"}

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns(transactionColumns...).
		Values(tx.ID, tx.UserID, tx.OccurredOn, tx.Type, tx.Amount, tx.MainCategory, tx.ItemName, tx.Note, tx.Mood, tx.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// Delete removes a transaction only if it belongs to userID. It returns
// false when nothing matched, covering both unknown ids and foreign rows.
func (r *TransactionRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := squirrel.Delete("transactions").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// ListMonthByDate returns the user's transactions for one calendar month,
// newest first. Used by the dashboard.
func (r *TransactionRepository) ListMonthByDate(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]*models.Transaction, error) {
	return r.list(ctx, r.monthQuery(userID, year, month).OrderBy("occurred_on DESC", "created_at DESC"))
}

// ListMonthByAmount returns the same rows ordered by descending amount.
// The monthly report depends on this order for its grouping.
func (r *TransactionRepository) ListMonthByAmount(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]*models.Transaction, error) {
	return r.list(ctx, r.monthQuery(userID, year, month).OrderBy("amount DESC", "created_at ASC"))
}

// ListAllByUser returns every transaction the user owns, newest first.
func (r *TransactionRepository) ListAllByUser(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("occurred_on DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, query)
}

func (r *TransactionRepository) monthQuery(userID uuid.UUID, year int, month time.Month) squirrel.SelectBuilder {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	return squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"occurred_on": start}).
		Where(squirrel.Lt{"occurred_on": end}).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *TransactionRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Transaction, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.OccurredOn, &tx.Type, &tx.Amount, &tx.MainCategory, &tx.ItemName, &tx.Note, &tx.Mood, &tx.CreatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}

// SumByType returns the lifetime sum of the user's amounts for one type.
func (r *TransactionRepository) SumByType(ctx context.Context, userID uuid.UUID, txType models.TransactionType) (int64, error) {
	query := squirrel.Select("COALESCE(SUM(amount), 0)").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID, "type": txType}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var sum int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&sum); err != nil {
		return 0, err
	}

	return sum, nil
}

// CountByUser returns the user's lifetime transaction count.
func (r *TransactionRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
