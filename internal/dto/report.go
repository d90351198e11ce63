package dto

type CategoryGroupResponse struct {
	Category string                `json:"category"`
	Total    int64                 `json:"total"`
	Items    []TransactionResponse `json:"items"`
}

type BudgetStatusResponse struct {
	Category string `json:"category"`
	Limit    int64  `json:"limit"`
	Spent    int64  `json:"spent"`
	Percent  int    `json:"percent"`
	Status   string `json:"status"`
}

type ReportResponse struct {
	Month          string                  `json:"month"`
	TotalExpense   int64                   `json:"total_expense"`
	TotalIncome    int64                   `json:"total_income"`
	RegretAmount   int64                   `json:"regret_amount"`
	RegretPercent  int                     `json:"regret_percent"`
	ExpenseGroups  []CategoryGroupResponse `json:"expense_groups"`
	IncomeGroups   []CategoryGroupResponse `json:"income_groups"`
	BudgetAnalysis []BudgetStatusResponse  `json:"budget_analysis"`
	Advice         string                  `json:"advice"`
}
