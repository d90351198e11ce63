package dto

type CreateTransactionRequest struct {
	Date         string `json:"date"` // YYYY-MM-DD, defaults to today
	Type         string `json:"type" validate:"required,oneof=income expense"`
	Amount       int64  `json:"amount" validate:"required,gt=0"`
	MainCategory string `json:"main_category" validate:"required"`
	ItemName     string `json:"item_name" validate:"required"`
	Note         string `json:"note"`
	Mood         string `json:"mood" validate:"omitempty,oneof=happy neutral regret"`
}

type TransactionResponse struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Type         string `json:"type"`
	Amount       int64  `json:"amount"`
	MainCategory string `json:"main_category"`
	ItemName     string `json:"item_name"`
	Note         string `json:"note,omitempty"`
	Mood         string `json:"mood"`
}

// CreateTransactionResponse carries the stored row plus any achievement
// names the write unlocked, for a one-time client notice.
type CreateTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Unlocked    []string            `json:"unlocked,omitempty"`
}

type DashboardResponse struct {
	TotalIncome  int64 `json:"total_income"`
	TotalExpense int64 `json:"total_expense"`
	NetWorth     int64 `json:"net_worth"`
	FireTarget   int64 `json:"fire_target"`
	FireProgress int   `json:"fire_progress"`
}

type LedgerResponse struct {
	Month        string                `json:"month"`
	Transactions []TransactionResponse `json:"transactions"`
	Dashboard    DashboardResponse     `json:"dashboard"`
}
