package authdto

// LoginInput is the body of POST /auth/login.
type LoginInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// ChangePasswordInput is the body of PUT /auth/change-password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" form:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" form:"newPassword" validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

// PushTokenInput registers or removes a device token.
type PushTokenInput struct {
	Token string `json:"token" form:"token" validate:"required,max=4096"`
}
