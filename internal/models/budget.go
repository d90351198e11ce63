package models

import (
	"time"

	"github.com/google/uuid"
)

// BudgetCategories is the fixed catalog budgets can be set for.
// Transactions may use free-form categories; only these are budgetable.
var BudgetCategories = []string{"餐飲", "交通", "娛樂", "購物", "房租", "其他"}

// Budget is a per-category spending ceiling, one row per (user, category).
// It applies to every month; budgets are not month-scoped.
type Budget struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Category    string    `db:"category"`
	LimitAmount int64     `db:"limit_amount"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
