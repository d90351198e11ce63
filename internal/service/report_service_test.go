package service

import (
	"fmt"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTx(txType models.TransactionType, category string, amount int64, mood models.Mood) *models.Transaction {
	return &models.Transaction{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		OccurredOn:   time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		Type:         txType,
		Amount:       amount,
		MainCategory: category,
		Mood:         mood,
	}
}

func TestBuildReportEmptyMonth(t *testing.T) {
	report := BuildReport(2026, time.March, nil)

	assert.Equal(t, int64(0), report.TotalExpense)
	assert.Equal(t, int64(0), report.TotalIncome)
	assert.Equal(t, int64(0), report.RegretAmount)
	assert.Equal(t, 0, report.RegretPercent)
	assert.Empty(t, report.ExpenseGroups)
	assert.Empty(t, report.IncomeGroups)
}

func TestBuildReportTotalsAndRegret(t *testing.T) {
	txs := []*models.Transaction{
		makeTx(models.TransactionTypeExpense, "餐飲", 300, models.MoodHappy),
		makeTx(models.TransactionTypeExpense, "交通", 100, models.MoodRegret),
		makeTx(models.TransactionTypeIncome, "薪水", 1000, models.MoodNeutral),
	}

	report := BuildReport(2026, time.March, txs)

	assert.Equal(t, int64(400), report.TotalExpense)
	assert.Equal(t, int64(1000), report.TotalIncome)
	assert.Equal(t, int64(100), report.RegretAmount)
	assert.Equal(t, 25, report.RegretPercent)

	require.Len(t, report.ExpenseGroups, 2)
	assert.Equal(t, "餐飲", report.ExpenseGroups[0].Category)
	assert.Equal(t, int64(300), report.ExpenseGroups[0].Total)
	assert.Equal(t, "交通", report.ExpenseGroups[1].Category)

	require.Len(t, report.IncomeGroups, 1)
	assert.Equal(t, "薪水", report.IncomeGroups[0].Category)
}

func TestBuildReportGroupOrderFollowsInput(t *testing.T) {
	// Input is amount-descending; groups appear in first-seen order and
	// items stay in input order inside each group.
	txs := []*models.Transaction{
		makeTx(models.TransactionTypeExpense, "娛樂", 500, models.MoodNeutral),
		makeTx(models.TransactionTypeExpense, "餐飲", 400, models.MoodNeutral),
		makeTx(models.TransactionTypeExpense, "娛樂", 300, models.MoodNeutral),
		makeTx(models.TransactionTypeExpense, "餐飲", 200, models.MoodNeutral),
	}

	report := BuildReport(2026, time.March, txs)

	require.Len(t, report.ExpenseGroups, 2)
	assert.Equal(t, "娛樂", report.ExpenseGroups[0].Category)
	assert.Equal(t, int64(800), report.ExpenseGroups[0].Total)
	assert.Equal(t, "餐飲", report.ExpenseGroups[1].Category)
	assert.Equal(t, int64(600), report.ExpenseGroups[1].Total)

	require.Len(t, report.ExpenseGroups[0].Items, 2)
	assert.Equal(t, int64(500), report.ExpenseGroups[0].Items[0].Amount)
	assert.Equal(t, int64(300), report.ExpenseGroups[0].Items[1].Amount)
}

func TestBuildReportRegretPercentTruncates(t *testing.T) {
	txs := []*models.Transaction{
		makeTx(models.TransactionTypeExpense, "餐飲", 200, models.MoodNeutral),
		makeTx(models.TransactionTypeExpense, "交通", 100, models.MoodRegret),
	}

	report := BuildReport(2026, time.March, txs)

	// 100/300 truncates to 33.
	assert.Equal(t, 33, report.RegretPercent)
}

func TestEvaluateBudgets(t *testing.T) {
	tests := []struct {
		name        string
		limit       int64
		spent       int64
		wantPercent int
		wantStatus  string
	}{
		{name: "at limit", limit: 500, spent: 500, wantPercent: 100, wantStatus: BudgetStatusDanger},
		{name: "warning band", limit: 500, spent: 400, wantPercent: 80, wantStatus: BudgetStatusWarning},
		{name: "well under", limit: 500, spent: 100, wantPercent: 20, wantStatus: BudgetStatusOK},
		{name: "over limit caps at 100", limit: 500, spent: 900, wantPercent: 100, wantStatus: BudgetStatusDanger},
		{name: "zero limit with spend", limit: 0, spent: 1, wantPercent: 100, wantStatus: BudgetStatusDanger},
		{name: "zero limit no spend", limit: 0, spent: 0, wantPercent: 0, wantStatus: BudgetStatusOK},
		{name: "no spend at all", limit: 500, spent: 0, wantPercent: 0, wantStatus: BudgetStatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budgets := []*models.Budget{
				{Category: "餐飲", LimitAmount: tt.limit},
			}
			var groups []*CategoryGroup
			if tt.spent > 0 {
				groups = []*CategoryGroup{{Category: "餐飲", Total: tt.spent}}
			}

			statuses := EvaluateBudgets(budgets, groups)

			require.Len(t, statuses, 1)
			assert.Equal(t, "餐飲", statuses[0].Category)
			assert.Equal(t, tt.spent, statuses[0].Spent)
			assert.Equal(t, tt.wantPercent, statuses[0].Percent)
			assert.Equal(t, tt.wantStatus, statuses[0].Status)
		})
	}
}

func TestEvaluateBudgetsOrderFollowsBudgets(t *testing.T) {
	budgets := []*models.Budget{
		{Category: "餐飲", LimitAmount: 500},
		{Category: "交通", LimitAmount: 200},
	}
	groups := []*CategoryGroup{
		{Category: "交通", Total: 150},
	}

	statuses := EvaluateBudgets(budgets, groups)

	require.Len(t, statuses, 2)
	assert.Equal(t, "餐飲", statuses[0].Category)
	assert.Equal(t, int64(0), statuses[0].Spent)
	assert.Equal(t, "交通", statuses[1].Category)
	assert.Equal(t, int64(150), statuses[1].Spent)
}

func TestGenerateAdviceStandardUserGetsUpgradePrompt(t *testing.T) {
	report := &MonthlyReport{TotalIncome: 1000, TotalExpense: 2000, RegretPercent: 50}

	advice := GenerateAdvice(report, false)

	assert.Equal(t, adviceUpgrade, advice)
}

func TestGenerateAdvice(t *testing.T) {
	tests := []struct {
		name   string
		report *MonthlyReport
		want   string
	}{
		{
			name: "regret alarm beats savings branches",
			report: &MonthlyReport{
				TotalIncome:   1000,
				TotalExpense:  400,
				RegretPercent: 25,
			},
			want: "本月有 25% 的支出讓你後悔，下次消費前多想三秒！",
		},
		{
			name: "overspend names largest category",
			report: &MonthlyReport{
				TotalIncome:  100,
				TotalExpense: 300,
				ExpenseGroups: []*CategoryGroup{
					{Category: "交通", Total: 100},
					{Category: "餐飲", Total: 200},
				},
			},
			want: "本月已透支！最大支出為「餐飲」，請注意。",
		},
		{
			name: "overspend tie keeps first seen",
			report: &MonthlyReport{
				TotalIncome:  100,
				TotalExpense: 400,
				ExpenseGroups: []*CategoryGroup{
					{Category: "娛樂", Total: 200},
					{Category: "購物", Total: 200},
				},
			},
			want: "本月已透支！最大支出為「娛樂」，請注意。",
		},
		{
			name:   "low savings rate",
			report: &MonthlyReport{TotalIncome: 1000, TotalExpense: 900},
			want:   adviceLowSavings,
		},
		{
			name:   "healthy savings rate",
			report: &MonthlyReport{TotalIncome: 1000, TotalExpense: 400},
			want:   adviceHealthy,
		},
		{
			name:   "expenses without income",
			report: &MonthlyReport{TotalExpense: 300},
			want:   adviceNoIncome,
		},
		{
			name:   "no records at all",
			report: &MonthlyReport{},
			want:   adviceNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateAdvice(tt.report, true))
		})
	}
}

func TestGenerateAdviceRegretBoundary(t *testing.T) {
	// Exactly 20 percent regret does not trip the alarm.
	report := &MonthlyReport{TotalIncome: 1000, TotalExpense: 400, RegretPercent: 20}

	advice := GenerateAdvice(report, true)

	assert.Equal(t, adviceHealthy, advice)
	assert.NotContains(t, advice, fmt.Sprintf("%d%%", 20))
}
