package dto

// UpdateBudgetsRequest maps category label to the submitted limit, kept as a
// string so one malformed amount skips that category instead of failing the
// whole batch.
type UpdateBudgetsRequest struct {
	Budgets map[string]string `json:"budgets" validate:"required"`
}

type UpdateBudgetsResponse struct {
	Updated  int      `json:"updated"`
	Skipped  []string `json:"skipped,omitempty"`
	Unlocked []string `json:"unlocked,omitempty"`
}

type BudgetResponse struct {
	Category string `json:"category"`
	Limit    int64  `json:"limit"`
}
