package credentials

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/cloudlesspay/internal/dto"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers/httperr"
	"github.com/GlebRadaev/cloudlesspay/pkg/auth"
	"github.com/GlebRadaev/cloudlesspay/pkg/utils"
	"github.com/GlebRadaev/cloudlesspay/pkg/validate"
)

//go:generate mockgen -source=credentials.go -destination=mocks.go -package=credentials

type Service interface {
	SetCredentials(ctx context.Context, userID int, keyID, keySecret string) error
}

type CredentialsHandler struct {
	credentialService Service
}

func New(credentialService Service) *CredentialsHandler {
	return &CredentialsHandler{credentialService: credentialService}
}

// SetCredentials godoc
//
//	@Summary		Store gateway credentials
//	@Description	Verify the key pair against the gateway and store it encrypted
//	@Tags			Credentials
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.SetCredentialsRequestDTO	true	"Gateway key pair"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Credentials saved"
//	@Failure		400	{object}	utils.Response	"Missing key_id or key_secret"
//	@Failure		401	{object}	utils.Response	"Credentials rejected by the gateway"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/auth/set-credentials [post]
func (h *CredentialsHandler) SetCredentials(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SetCredentialsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.Response{
			Error:   "Missing Input Parameter",
			Message: err.Error(),
		})
		return
	}

	if err := h.credentialService.SetCredentials(r.Context(), userID, req.KeyID, req.KeySecret); err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Credentials saved successfully")
}
