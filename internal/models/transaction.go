package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodRegret  Mood = "regret"
)

// Transaction is a single ledger entry. Amounts are whole currency units
// and always positive; the Type field carries the sign.
type Transaction struct {
	ID           uuid.UUID       `db:"id"`
	UserID       uuid.UUID       `db:"user_id"`
	OccurredOn   time.Time       `db:"occurred_on"`
	Type         TransactionType `db:"type"`
	Amount       int64           `db:"amount"`
	MainCategory string          `db:"main_category"`
	ItemName     string          `db:"item_name"`
	Note         string          `db:"note"`
	Mood         Mood            `db:"mood"`
	CreatedAt    time.Time       `db:"created_at"`
}
