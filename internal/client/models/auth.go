package models

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is what the sign-up form collects. ConfirmPassword never
// leaves the client.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=50,personname"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,signuppassword"`
	ConfirmPassword string `json:"-" validate:"required,eqfield=Password"`
	RoleID          int    `json:"roleId" validate:"gte=1"`
}

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=50"`
	ConfirmPassword string `json:"-" validate:"required,eqfield=NewPassword"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,strongpassword"`
	ConfirmPassword string `json:"-" validate:"required,eqfield=NewPassword"`
}

// MessageResponse is the body of the password endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
