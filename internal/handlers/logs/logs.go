package logs

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/dto"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers/httperr"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers/params"
	"github.com/GlebRadaev/cloudlesspay/pkg/auth"
	"github.com/GlebRadaev/cloudlesspay/pkg/utils"
)

//go:generate mockgen -source=logs.go -destination=mocks.go -package=logs

type Service interface {
	ListLogs(ctx context.Context, userID int, q domain.ListQuery) (*domain.LogPage, error)
}

type LogHandler struct {
	auditService Service
}

func New(auditService Service) *LogHandler {
	return &LogHandler{auditService: auditService}
}

// ListLogs godoc
//
//	@Summary		API call log
//	@Description	DataTables server-side listing of audited gateway calls; searches endpoint, domain, platform and status.
//	@Tags			Logs
//	@Produce		json
//	@Param			draw				query	int		false	"Draw counter"
//	@Param			start				query	int		false	"Offset"
//	@Param			length				query	int		false	"Page size (max 100)"
//	@Param			search[value]		query	string	false	"Search text"
//	@Param			order[0][column]	query	int		false	"0 time, 1 endpoint, 2 domain, 3 platform, 4 status"
//	@Param			order[0][dir]		query	string	false	"asc or desc"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TableResponseDTO[dto.APILogDTO]
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/logs [get]
func (h *LogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	q := params.ParseListQuery(r.URL.Query())
	page, err := h.auditService.ListLogs(r.Context(), userID, q)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	data := make([]dto.APILogDTO, 0, len(page.Items))
	for _, l := range page.Items {
		data = append(data, dto.APILogDTO{
			LogTime:  l.LogTime,
			Endpoint: l.Endpoint,
			Domain:   l.Domain,
			Platform: l.Platform,
			Response: l.Response,
			Status:   string(l.Status),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TableResponseDTO[dto.APILogDTO]{
		Draw:            q.Draw,
		RecordsTotal:    page.Total,
		RecordsFiltered: page.Filtered,
		Data:            data,
	})
}
