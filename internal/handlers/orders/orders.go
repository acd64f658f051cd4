package orders

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/cloudlesspay/internal/dto"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers/httperr"
	"github.com/GlebRadaev/cloudlesspay/internal/service/orderservice"
	"github.com/GlebRadaev/cloudlesspay/pkg/auth"
	"github.com/GlebRadaev/cloudlesspay/pkg/utils"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=orders.go -destination=mocks.go -package=orders

type Service interface {
	CreateOrder(ctx context.Context, req orderservice.Request) (*orderservice.Response, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create a payment order
//	@Description	Creates an order on the gateway with the caller's stored credentials. Costs one credit on success; every attempt is logged.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateOrderRequestDTO	true	"Order parameters, amounts in major units"
//	@Security		BearerAuth
//	@Success		201	{object}	orderservice.Response
//	@Failure		400	{object}	utils.Response	"Invalid input, missing credentials or insufficient credits"
//	@Failure		401	{object}	utils.Response	"Missing, invalid or revoked API token"
//	@Failure		500	{object}	utils.Response	"Unexpected gateway or server error"
//	@Router			/api/create-order [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.Response{
			Error:   "Invalid Input",
			Message: "Invalid request body",
		})
		return
	}

	amount := decimal.Zero
	if req.Amount != nil {
		amount = *req.Amount
	}
	resp, err := h.orderService.CreateOrder(r.Context(), orderservice.Request{
		UserID:                userID,
		Amount:                amount,
		Currency:              req.Currency,
		Receipt:               req.Receipt,
		Notes:                 req.StringNotes(),
		PartialPayment:        req.PartialPayment,
		FirstPaymentMinAmount: req.FirstPaymentMinAmount,
		PaymentCapture:        req.PaymentCapture,
		Origin:                r.Header.Get("Origin"),
		UserAgent:             r.UserAgent(),
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}
