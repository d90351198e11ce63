package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a static reminder record for a recurring charge.
// Nothing schedules it; no transactions are generated from it.
type Subscription struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Amount    int64     `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}
