package dto

type CreateSubscriptionRequest struct {
	Name   string `json:"name" validate:"required"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
}

type SubscriptionResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

type CreateSubscriptionResponse struct {
	Subscription SubscriptionResponse `json:"subscription"`
	Unlocked     []string             `json:"unlocked,omitempty"`
}
