package dto

type ProfileResponse struct {
	Username     string `json:"username"`
	DisplayName  string `json:"display_name"`
	Bio          string `json:"bio"`
	FireTarget   int64  `json:"fire_target"`
	Premium      bool   `json:"premium"`
	NetWorth     int64  `json:"net_worth"`
	FireProgress int    `json:"fire_progress"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=50"`
	Bio         string `json:"bio" validate:"max=200"`
	FireTarget  int64  `json:"fire_target" validate:"gte=0"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type FeedbackRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}
