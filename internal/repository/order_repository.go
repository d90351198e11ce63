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

var orderColumns = []string{"id", "user_id", "trade_no", "amount", "status", "paid_at", "created_at"}

type OrderRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewOrderRepository(db *pgxpool.Pool, logger *zap.Logger) *OrderRepository {
	return &OrderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	query := squirrel.Insert("orders").
		Columns(orderColumns...).
		Values(order.ID, order.UserID, order.TradeNo, order.Amount, order.Status, order.PaidAt, order.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *OrderRepository) GetByTradeNo(ctx context.Context, tradeNo string) (*models.Order, error) {
	query := squirrel.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"trade_no": tradeNo}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID, &order.UserID, &order.TradeNo, &order.Amount, &order.Status, &order.PaidAt, &order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// MarkPaid flips a pending order to Paid. Returns false when the order was
// not pending anymore, which callers treat as an idempotent re-confirm.
func (r *OrderRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (bool, error) {
	query := squirrel.Update("orders").
		Set("status", models.OrderStatusPaid).
		Set("paid_at", paidAt).
		Where(squirrel.Eq{"id": id, "status": models.OrderStatusPending}).
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
