package dto

type CheckoutResponse struct {
	TradeNo string `json:"trade_no"`
	Amount  int64  `json:"amount"`
}

type ConfirmPaymentRequest struct {
	TradeNo string `json:"trade_no" validate:"required"`
}

type ConfirmPaymentResponse struct {
	TradeNo string `json:"trade_no"`
	Status  string `json:"status"`
	Premium bool   `json:"premium"`
}
