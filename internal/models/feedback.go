package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is write-only: stored for operators, never read back by the app.
type Feedback struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
