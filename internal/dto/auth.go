package dto

type SendOTPRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Username string `json:"username" validate:"required,min=3,max=150" example:"alice"`
}

type VerifyOTPRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	OTP      string `json:"otp" validate:"required,otp" example:"042917"`
	Username string `json:"username" validate:"required,min=3,max=150" example:"alice"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"s3cretpass"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"s3cretpass"`
}

type MessageResponseDTO struct {
	Message string `json:"message" example:"OTP sent successfully"`
}
