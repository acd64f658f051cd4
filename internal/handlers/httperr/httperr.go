// Package httperr maps domain errors to HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/pkg/utils"
	"go.uber.org/zap"
)

const internalMessage = "Internal server error"

type rule struct {
	target error
	status int
	kind   string
}

// Checked in order; the first match wins.
var rules = []rule{
	{domain.ErrInvalidAmount, http.StatusBadRequest, "Invalid Input"},
	{domain.ErrInvalidInput, http.StatusBadRequest, "Invalid Input"},
	{domain.ErrMissingParameter, http.StatusBadRequest, "Missing Input Parameter"},
	{domain.ErrInsufficientCredits, http.StatusBadRequest, "Insufficient credits"},
	{domain.ErrCredentialsNotConfigured, http.StatusBadRequest, "Credentials not configured"},
	{domain.ErrCredentialsInvalid, http.StatusUnauthorized, "Invalid credentials"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{domain.ErrTokenRevoked, http.StatusUnauthorized, "Unauthorized"},
	{domain.ErrTokenNotFound, http.StatusBadRequest, "Access token not found"},
	{domain.ErrTokenAlreadyExists, http.StatusForbidden, "Access token already exists"},
	{domain.ErrUserExists, http.StatusForbidden, "User already exists"},
	{domain.ErrInvalidOTP, http.StatusForbidden, "Invalid OTP"},
	{domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{domain.ErrWalletNotFound, http.StatusNotFound, "Wallet not found"},
	{domain.ErrDuplicateTransaction, http.StatusConflict, "Duplicate transaction"},
	{domain.ErrSignatureInvalid, http.StatusBadRequest, "Payment verification failed"},
	{domain.ErrGatewayBadRequest, http.StatusBadRequest, "Gateway Bad Request"},
	{domain.ErrGatewayUnexpected, http.StatusInternalServerError, "An unexpected error occurred"},
}

// Status returns the HTTP status and error kind for err.
func Status(err error) (int, string) {
	for _, r := range rules {
		if errors.Is(err, r.target) {
			return r.status, r.kind
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// Write responds with {"error": kind, "message": ...}. Unclassified errors
// are logged and answered with a generic message.
func Write(w http.ResponseWriter, err error) {
	status, kind := Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError && !errors.Is(err, domain.ErrGatewayUnexpected) {
		zap.L().Error("request failed", zap.Error(err))
		msg = internalMessage
	}
	utils.RespondWithJSON(w, status, utils.Response{Error: kind, Message: msg})
}
