package dto

type SetCredentialsRequestDTO struct {
	KeyID     string `json:"key_id" validate:"required" example:"rzp_test_1DP5mmOlF5G5ag"`
	KeySecret string `json:"key_secret" validate:"required" example:"thisisasecret"`
}

type AccessTokenResponseDTO struct {
	AccessToken string `json:"access_token"`
	Message     string `json:"message,omitempty"`
}
