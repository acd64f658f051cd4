package usage

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/cloudlesspay/internal/dto"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers/httperr"
	"github.com/GlebRadaev/cloudlesspay/internal/service/usageservice"
	"github.com/GlebRadaev/cloudlesspay/pkg/auth"
	"github.com/GlebRadaev/cloudlesspay/pkg/utils"
)

//go:generate mockgen -source=usage.go -destination=mocks.go -package=usage

type Service interface {
	Summary(ctx context.Context, userID int) (*usageservice.Summary, error)
	Monthwise(ctx context.Context, userID int, label string) (int, error)
}

type UsageHandler struct {
	usageService Service
}

func New(usageService Service) *UsageHandler {
	return &UsageHandler{usageService: usageService}
}

// GetCredits godoc
//
//	@Summary		Credit balance and this month's usage
//	@Tags			Settings
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CreditsResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/settings/get-credits [get]
func (h *UsageHandler) GetCredits(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	summary, err := h.usageService.Summary(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreditsResponseDTO{
		TotalCredits:         summary.TotalCredits,
		CreditsUsedThisMonth: summary.CreditsUsedThisMonth,
	})
}

// GetMonthwiseCredits godoc
//
//	@Summary		Successful calls in a calendar month
//	@Description	month is one of this-month, last-month, last-previous-month
//	@Tags			Settings
//	@Produce		json
//	@Param			month	query	string	false	"Month selector"	Enums(this-month, last-month, last-previous-month)	default(this-month)
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MonthwiseCreditsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid month selection"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/settings/get_monthwise_credits [get]
func (h *UsageHandler) GetMonthwiseCredits(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	month := strings.TrimSpace(r.URL.Query().Get("month"))
	if month == "" {
		month = usageservice.ThisMonth
	}
	used, err := h.usageService.Monthwise(r.Context(), userID, month)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MonthwiseCreditsResponseDTO{
		SelectedMonth: month,
		CreditsUsed:   used,
	})
}
