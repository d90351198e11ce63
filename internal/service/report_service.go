package service

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	BudgetStatusOK      = "ok"
	BudgetStatusWarning = "warning"
	BudgetStatusDanger  = "danger"
)

// CategoryGroup is one main-category bucket of a monthly report. Items keep
// the amount-descending order they were read in.
type CategoryGroup struct {
	Category string
	Total    int64
	Items    []*models.Transaction
}

// MonthlyReport is the aggregate view of one calendar month of a user's
// ledger. Group slices preserve the first-seen order of category labels.
type MonthlyReport struct {
	Year          int
	Month         time.Month
	TotalExpense  int64
	TotalIncome   int64
	ExpenseGroups []*CategoryGroup
	IncomeGroups  []*CategoryGroup
	RegretAmount  int64
	RegretPercent int
}

// BudgetStatus is the evaluated state of one budget for the month.
type BudgetStatus struct {
	Category string
	Limit    int64
	Spent    int64
	Percent  int
	Status   string
}

type ReportService struct {
	userRepo   *repository.UserRepository
	txRepo     *repository.TransactionRepository
	budgetRepo *repository.BudgetRepository
	logger     *zap.Logger
}

func NewReportService(
	userRepo *repository.UserRepository,
	txRepo *repository.TransactionRepository,
	budgetRepo *repository.BudgetRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		userRepo:   userRepo,
		txRepo:     txRepo,
		budgetRepo: budgetRepo,
		logger:     logger,
	}
}

// MonthlyAnalysis aggregates one calendar month of the user's ledger and,
// for premium users only, evaluates budgets and generates advice. The
// premium gate lives here, not in the evaluators.
func (s *ReportService) MonthlyAnalysis(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*dto.ReportResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	transactions, err := s.txRepo.ListMonthByAmount(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	report := BuildReport(year, month, transactions)

	resp := &dto.ReportResponse{
		Month:          fmt.Sprintf("%04d-%02d", year, month),
		TotalExpense:   report.TotalExpense,
		TotalIncome:    report.TotalIncome,
		RegretAmount:   report.RegretAmount,
		RegretPercent:  report.RegretPercent,
		ExpenseGroups:  toGroupResponses(report.ExpenseGroups),
		IncomeGroups:   toGroupResponses(report.IncomeGroups),
		BudgetAnalysis: []dto.BudgetStatusResponse{},
		Advice:         GenerateAdvice(report, user.Premium),
	}

	if user.Premium {
		budgets, err := s.budgetRepo.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, st := range EvaluateBudgets(budgets, report.ExpenseGroups) {
			resp.BudgetAnalysis = append(resp.BudgetAnalysis, dto.BudgetStatusResponse{
				Category: st.Category,
				Limit:    st.Limit,
				Spent:    st.Spent,
				Percent:  st.Percent,
				Status:   st.Status,
			})
		}
	}

	return resp, nil
}

// BuildReport partitions and groups one month of transactions. The input
// must already be ordered by descending amount; both the item order inside
// each group and the first-seen group order derive from it.
func BuildReport(year int, month time.Month, transactions []*models.Transaction) *MonthlyReport {
	report := &MonthlyReport{
		Year:  year,
		Month: month,
	}

	expenseIdx := make(map[string]*CategoryGroup)
	incomeIdx := make(map[string]*CategoryGroup)

	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionTypeExpense:
			report.TotalExpense += tx.Amount
			report.ExpenseGroups = appendGrouped(report.ExpenseGroups, expenseIdx, tx)
			if tx.Mood == models.MoodRegret {
				report.RegretAmount += tx.Amount
			}
		case models.TransactionTypeIncome:
			report.TotalIncome += tx.Amount
			report.IncomeGroups = appendGrouped(report.IncomeGroups, incomeIdx, tx)
		}
	}

	if report.TotalExpense > 0 {
		report.RegretPercent = int(100 * report.RegretAmount / report.TotalExpense)
	}

	return report
}

func appendGrouped(groups []*CategoryGroup, idx map[string]*CategoryGroup, tx *models.Transaction) []*CategoryGroup {
	group, ok := idx[tx.MainCategory]
	if !ok {
		group = &CategoryGroup{Category: tx.MainCategory}
		idx[tx.MainCategory] = group
		groups = append(groups, group)
	}
	group.Total += tx.Amount
	group.Items = append(group.Items, tx)
	return groups
}

// EvaluateBudgets compares each budget against the month's grouped expenses.
// Output order follows the budgets slice. Callers are responsible for the
// premium gate; this never sees a non-premium user.
func EvaluateBudgets(budgets []*models.Budget, expenseGroups []*CategoryGroup) []BudgetStatus {
	spentByCategory := make(map[string]int64, len(expenseGroups))
	for _, group := range expenseGroups {
		spentByCategory[group.Category] = group.Total
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		spent := spentByCategory[budget.Category]

		var percent int
		switch {
		case budget.LimitAmount > 0:
			percent = int(100 * spent / budget.LimitAmount)
			if percent > 100 {
				percent = 100
			}
		case spent > 0:
			// A zero budget with any spend is fully over-limit.
			percent = 100
		}

		status := BudgetStatusOK
		switch {
		case percent >= 100:
			status = BudgetStatusDanger
		case percent >= 80:
			status = BudgetStatusWarning
		}

		statuses = append(statuses, BudgetStatus{
			Category: budget.Category,
			Limit:    budget.LimitAmount,
			Spent:    spent,
			Percent:  percent,
			Status:   status,
		})
	}

	return statuses
}

// Advice strings. The regret alarm takes priority over every savings-rate
// branch.
const (
	adviceUpgrade    = "升級 Premium 即可解鎖 AI 理財分析。"
	adviceLowSavings = "儲蓄率偏低，建議設定預算來控制花費。"
	adviceHealthy    = "儲蓄率健康！可以考慮將結餘進行投資。"
	adviceNoIncome   = "本月沒有收入紀錄，請留意現金流。"
	adviceNoData     = "本月尚無任何紀錄，開始記帳吧！"
)

// GenerateAdvice walks the recommendation decision tree over the report.
// Non-premium users always get the upgrade prompt.
func GenerateAdvice(report *MonthlyReport, premium bool) string {
	if !premium {
		return adviceUpgrade
	}

	if report.RegretPercent > 20 {
		return fmt.Sprintf("本月有 %d%% 的支出讓你後悔，下次消費前多想三秒！", report.RegretPercent)
	}

	if report.TotalIncome > 0 {
		rate := float64(report.TotalIncome-report.TotalExpense) / float64(report.TotalIncome)
		switch {
		case rate < 0:
			return fmt.Sprintf("本月已透支！最大支出為「%s」，請注意。", topExpenseCategory(report))
		case rate < 0.2:
			return adviceLowSavings
		default:
			return adviceHealthy
		}
	}

	if report.TotalExpense > 0 {
		return adviceNoIncome
	}

	return adviceNoData
}

// topExpenseCategory returns the label of the largest expense group. Ties
// keep the first-seen group (strict greater-than scan).
func topExpenseCategory(report *MonthlyReport) string {
	var top *CategoryGroup
	for _, group := range report.ExpenseGroups {
		if top == nil || group.Total > top.Total {
			top = group
		}
	}
	if top == nil {
		return ""
	}
	return top.Category
}

func toGroupResponses(groups []*CategoryGroup) []dto.CategoryGroupResponse {
	out := make([]dto.CategoryGroupResponse, 0, len(groups))
	for _, group := range groups {
		items := make([]dto.TransactionResponse, 0, len(group.Items))
		for _, tx := range group.Items {
			items = append(items, toTransactionResponse(tx))
		}
		out = append(out, dto.CategoryGroupResponse{
			Category: group.Category,
			Total:    group.Total,
			Items:    items,
		})
	}
	return out
}
