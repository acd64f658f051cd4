package tokens

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/cloudlesspay/internal/dto"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers/httperr"
	"github.com/GlebRadaev/cloudlesspay/pkg/auth"
	"github.com/GlebRadaev/cloudlesspay/pkg/utils"
)

//go:generate mockgen -source=tokens.go -destination=mocks.go -package=tokens

type Service interface {
	Issue(ctx context.Context, userID int) (string, error)
	Get(ctx context.Context, userID int) (string, error)
	Revoke(ctx context.Context, userID int) error
}

type TokenHandler struct {
	tokenService Service
}

func New(tokenService Service) *TokenHandler {
	return &TokenHandler{tokenService: tokenService}
}

// CreateAccessToken godoc
//
//	@Summary		Issue an API access token
//	@Description	Requires a positive credit balance, verified gateway credentials and no active token.
//	@Tags			Tokens
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AccessTokenResponseDTO
//	@Failure		400	{object}	utils.Response	"Insufficient credits or credentials not configured"
//	@Failure		401	{object}	utils.Response	"Unauthorized or credentials rejected"
//	@Failure		403	{object}	utils.Response	"Access token already exists"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/auth/create-access-token [get]
func (h *TokenHandler) CreateAccessToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	token, err := h.tokenService.Issue(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccessTokenResponseDTO{
		AccessToken: token,
		Message:     "Access token created successfully",
	})
}

// GetAccessToken godoc
//
//	@Summary		Fetch the active API access token
//	@Tags			Tokens
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AccessTokenResponseDTO
//	@Failure		400	{object}	utils.Response	"No token or insufficient credits"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/auth/get-access-token [get]
func (h *TokenHandler) GetAccessToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	token, err := h.tokenService.Get(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccessTokenResponseDTO{AccessToken: token})
}

// DeleteAccessToken godoc
//
//	@Summary		Revoke the active API access token
//	@Tags			Tokens
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Access token deleted"
//	@Failure		400	{object}	utils.Response	"No token to delete"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/auth/delete-access-token [delete]
func (h *TokenHandler) DeleteAccessToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.tokenService.Revoke(r.Context(), userID); err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Access token deleted successfully")
}
