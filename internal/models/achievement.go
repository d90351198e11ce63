package models

import (
	"time"

	"github.com/google/uuid"
)

// Achievement codes, stable across renames of the display name.
const (
	AchievementFirstEntry          = "first_entry"
	AchievementFrugal              = "frugal"
	AchievementBigEarner           = "big_earner"
	AchievementSubscriptionManager = "subscription_manager"
	AchievementBudgetGuardian      = "budget_guardian"
)

// Achievement is a global catalog entry, seeded once at startup.
type Achievement struct {
	ID          uuid.UUID `db:"id"`
	Code        string    `db:"code"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Icon        string    `db:"icon"`
	CreatedAt   time.Time `db:"created_at"`
}

// UserAchievement records that a user earned a catalog entry.
// At most one row per (user, achievement), enforced by a unique index.
type UserAchievement struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	AchievementID uuid.UUID `db:"achievement_id"`
	EarnedAt      time.Time `db:"earned_at"`
}
