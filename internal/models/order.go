package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "Pending"
	OrderStatusPaid    OrderStatus = "Paid"
)

// Order records a premium-upgrade payment attempt. TradeNo is the unique
// reference the external payment provider echoes back on confirmation.
type Order struct {
	ID        uuid.UUID   `db:"id"`
	UserID    uuid.UUID   `db:"user_id"`
	TradeNo   string      `db:"trade_no"`
	Amount    int64       `db:"amount"`
	Status    OrderStatus `db:"status"`
	PaidAt    *time.Time  `db:"paid_at"`
	CreatedAt time.Time   `db:"created_at"`
}
