package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/dto"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers/httperr"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers/params"
	"github.com/GlebRadaev/cloudlesspay/internal/service/billingservice"
	"github.com/GlebRadaev/cloudlesspay/pkg/auth"
	"github.com/GlebRadaev/cloudlesspay/pkg/utils"
	"github.com/GlebRadaev/cloudlesspay/pkg/validate"
)

//go:generate mockgen -source=billing.go -destination=mocks.go -package=billing

const paymentDateLayout = "02-01-2006"

type Service interface {
	AddCredits(ctx context.Context, userID int, amount int64) (*billingservice.TopUp, error)
	ConfirmPayment(ctx context.Context, userID int, c billingservice.Confirmation) (*domain.Wallet, error)
	SaveBillingAddress(ctx context.Context, userID int, address domain.BillingAddress) error
	GetBillingAddress(ctx context.Context, userID int) (*domain.BillingAddress, error)
	ListPayments(ctx context.Context, userID int, q domain.ListQuery) (*domain.PaymentPage, error)
}

type BillingHandler struct {
	billingService Service
}

func New(billingService Service) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// AddCredits godoc
//
//	@Summary		Start a credit top-up
//	@Description	Opens a platform gateway order for the client checkout. One credit costs one rupee.
//	@Tags			Settings
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.AddCreditsRequestDTO	true	"Credits to buy"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AddCreditsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid amount provided"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/settings/add-credits [post]
func (h *BillingHandler) AddCredits(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.AddCreditsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount provided.")
		return
	}

	topUp, err := h.billingService.AddCredits(r.Context(), userID, req.Amount)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AddCreditsResponseDTO{
		Message:       "Payment order created successfully.",
		OrderID:       topUp.OrderID,
		Amount:        topUp.Amount,
		RazorpayKeyID: topUp.KeyID,
	})
}

// PaymentSuccess godoc
//
//	@Summary		Confirm a top-up payment
//	@Description	Verifies the checkout signature, records the payment once and credits the wallet.
//	@Tags			Settings
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.PaymentSuccessRequestDTO	true	"Checkout result"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentSuccessResponseDTO
//	@Failure		400	{object}	utils.Response	"Missing fields or verification failed"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		409	{object}	utils.Response	"Payment already recorded"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/settings/payment-success [post]
func (h *BillingHandler) PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.PaymentSuccessRequestDTO
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

	wallet, err := h.billingService.ConfirmPayment(r.Context(), userID, billingservice.Confirmation{
		OrderID:   req.RazorpayOrderID,
		PaymentID: req.RazorpayPaymentID,
		Signature: req.RazorpaySignature,
		Amount:    req.Amount,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentSuccessResponseDTO{
		Message:    "Payment verified and wallet updated",
		NewBalance: wallet.Credits,
	})
}

// SaveBillingAddress godoc
//
//	@Summary		Save the billing address
//	@Tags			Settings
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.BillingAddressDTO	true	"Billing address"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Billing address saved"
//	@Failure		400	{object}	utils.Response	"Invalid input"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/settings/save_billing_address [post]
func (h *BillingHandler) SaveBillingAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.BillingAddressDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.billingService.SaveBillingAddress(r.Context(), userID, domain.BillingAddress(req)); err != nil {
		httperr.Write(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Billing address saved successfully.")
}

// GetBillingAddress godoc
//
//	@Summary		Get the billing address
//	@Tags			Settings
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BillingAddressResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/settings/get_billing_address [get]
func (h *BillingHandler) GetBillingAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	address, err := h.billingService.GetBillingAddress(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}
	resp := dto.BillingAddressResponseDTO{Message: "Billing addresses retrieved successfully."}
	if address != nil {
		billings := dto.BillingAddressDTO(*address)
		resp.Billings = &billings
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// PaymentHistory godoc
//
//	@Summary		Payment history
//	@Description	DataTables server-side listing; searches transaction id and status.
//	@Tags			Settings
//	@Produce		json
//	@Param			draw				query	int		false	"Draw counter"
//	@Param			start				query	int		false	"Offset"
//	@Param			length				query	int		false	"Page size (max 100)"
//	@Param			search[value]		query	string	false	"Search text"
//	@Param			order[0][column]	query	int		false	"0 date, 1 transaction id, 2 amount, 3 status"
//	@Param			order[0][dir]		query	string	false	"asc or desc"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TableResponseDTO[dto.PaymentDTO]
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/settings/payment-history [get]
func (h *BillingHandler) PaymentHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	q := params.ParseListQuery(r.URL.Query())
	page, err := h.billingService.ListPayments(r.Context(), userID, q)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	data := make([]dto.PaymentDTO, 0, len(page.Items))
	for _, p := range page.Items {
		data = append(data, dto.PaymentDTO{
			PaymentDate:   p.PaymentDate.Format(paymentDateLayout),
			TransactionID: p.TransactionID,
			Amount:        fmt.Sprintf("₹%s", p.Amount.StringFixed(2)),
			Status:        string(p.Status),
			PaymentMethod: p.PaymentMethod,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TableResponseDTO[dto.PaymentDTO]{
		Draw:            q.Draw,
		RecordsTotal:    page.Total,
		RecordsFiltered: page.Filtered,
		Data:            data,
	})
}
