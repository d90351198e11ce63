package service

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestUnlockCodes(t *testing.T) {
	tests := []struct {
		name          string
		action        LedgerAction
		tx            *models.Transaction
		lifetimeCount int64
		want          []string
	}{
		{
			name:          "first entry",
			action:        ActionTransactionCreated,
			tx:            makeTx(models.TransactionTypeExpense, "餐飲", 120, models.MoodNeutral),
			lifetimeCount: 1,
			want:          []string{models.AchievementFirstEntry},
		},
		{
			name:          "second entry unlocks nothing",
			action:        ActionTransactionCreated,
			tx:            makeTx(models.TransactionTypeExpense, "餐飲", 120, models.MoodNeutral),
			lifetimeCount: 2,
			want:          nil,
		},
		{
			name:          "small expense",
			action:        ActionTransactionCreated,
			tx:            makeTx(models.TransactionTypeExpense, "餐飲", 49, models.MoodNeutral),
			lifetimeCount: 5,
			want:          []string{models.AchievementFrugal},
		},
		{
			name:          "expense of exactly 50 is not frugal",
			action:        ActionTransactionCreated,
			tx:            makeTx(models.TransactionTypeExpense, "餐飲", 50, models.MoodNeutral),
			lifetimeCount: 5,
			want:          nil,
		},
		{
			name:          "large income",
			action:        ActionTransactionCreated,
			tx:            makeTx(models.TransactionTypeIncome, "薪水", 5001, models.MoodHappy),
			lifetimeCount: 5,
			want:          []string{models.AchievementBigEarner},
		},
		{
			name:          "income of exactly 5000 is not big",
			action:        ActionTransactionCreated,
			tx:            makeTx(models.TransactionTypeIncome, "薪水", 5000, models.MoodHappy),
			lifetimeCount: 5,
			want:          nil,
		},
		{
			name:          "small income is not frugal",
			action:        ActionTransactionCreated,
			tx:            makeTx(models.TransactionTypeIncome, "薪水", 10, models.MoodHappy),
			lifetimeCount: 5,
			want:          nil,
		},
		{
			name:          "first entry and frugal together",
			action:        ActionTransactionCreated,
			tx:            makeTx(models.TransactionTypeExpense, "餐飲", 30, models.MoodNeutral),
			lifetimeCount: 1,
			want:          []string{models.AchievementFirstEntry, models.AchievementFrugal},
		},
		{
			name:   "nil transaction unlocks nothing",
			action: ActionTransactionCreated,
			tx:     nil,
			want:   nil,
		},
		{
			name:   "subscription created",
			action: ActionSubscriptionCreated,
			want:   []string{models.AchievementSubscriptionManager},
		},
		{
			name:   "budgets updated",
			action: ActionBudgetsUpdated,
			want:   []string{models.AchievementBudgetGuardian},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, unlockCodes(tt.action, tt.tx, tt.lifetimeCount))
		})
	}
}

func TestDefaultCatalogCoversAllCodes(t *testing.T) {
	catalog := defaultCatalog(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))

	codes := make(map[string]bool, len(catalog))
	for _, ach := range catalog {
		assert.NotEmpty(t, ach.Name)
		assert.NotEmpty(t, ach.Icon)
		codes[ach.Code] = true
	}

	for _, code := range []string{
		models.AchievementFirstEntry,
		models.AchievementFrugal,
		models.AchievementBigEarner,
		models.AchievementSubscriptionManager,
		models.AchievementBudgetGuardian,
	} {
		assert.True(t, codes[code], "missing catalog entry for %s", code)
	}
}
