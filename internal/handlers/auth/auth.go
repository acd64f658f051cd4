package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/dto"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers/httperr"
	"github.com/GlebRadaev/cloudlesspay/pkg/utils"
	"github.com/GlebRadaev/cloudlesspay/pkg/validate"
)

//go:generate mockgen -source=auth.go -destination=mocks.go -package=auth

type Service interface {
	SendOTP(ctx context.Context, email, username string) error
	Register(ctx context.Context, email, code, username, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(userID int) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SendOTP godoc
//
//	@Summary		Send a registration code
//	@Description	Email a one-time code to an address that is not yet registered
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SendOTPRequestDTO	true	"Send OTP request body"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"User already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/auth/send-otp [post]
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.SendOTPRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.authService.SendOTP(r.Context(), req.Email, req.Username); err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Message: "OTP sent successfully",
	})
}

// VerifyOTP godoc
//
//	@Summary		Register a new user
//	@Description	Redeem the emailed code and create the account with its starting wallet
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyOTPRequestDTO	true	"Verify OTP request body"
//	@Success		201		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Invalid OTP or user already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyOTPRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := h.authService.Register(r.Context(), req.Email, req.OTP, req.Username, req.Password); err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.MessageResponseDTO{
		Message: "User successfully registered",
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with email and password and get a session token in the Authorization header
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.MessageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{
		Message: "User successfully authenticated",
	})
}
