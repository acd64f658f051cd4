package domain

import "errors"

var (
	ErrInvalidAmount            = errors.New("amount must be greater than zero")
	ErrMissingParameter         = errors.New("missing required parameter")
	ErrInvalidInput             = errors.New("invalid input")
	ErrInsufficientCredits      = errors.New("insufficient credits")
	ErrWalletNotFound           = errors.New("wallet not found")
	ErrCredentialsNotConfigured = errors.New("gateway credentials are not configured")
	ErrCredentialsInvalid       = errors.New("gateway credentials are invalid")
	ErrTokenAlreadyExists       = errors.New("access token already exists")
	ErrTokenNotFound            = errors.New("access token not found")
	ErrTokenRevoked             = errors.New("access token has been revoked")
	ErrUnauthorized             = errors.New("unauthorized")
	ErrUserExists               = errors.New("user already exists")
	ErrUserNotFound             = errors.New("user not found")
	ErrInvalidCredentials       = errors.New("invalid email or password")
	ErrInvalidOTP               = errors.New("invalid or expired otp")
	ErrDuplicateTransaction     = errors.New("transaction already recorded")
	ErrSignatureInvalid         = errors.New("payment signature verification failed")
	ErrGatewayBadRequest        = errors.New("gateway rejected the request")
	ErrGatewayUnexpected        = errors.New("unexpected gateway error")
	ErrConfiguration            = errors.New("service misconfigured")
	ErrDecryption               = errors.New("failed to decrypt stored secret")
	ErrPersistence              = errors.New("failed to persist record")
)
