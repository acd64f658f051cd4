package dto

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateOrderRequestDTO struct {
	Amount                *decimal.Decimal           `json:"amount" swaggertype:"number" example:"500"`
	Currency              string                     `json:"currency" example:"INR"`
	Receipt               string                     `json:"receipt" example:"receipt#1"`
	Notes                 map[string]json.RawMessage `json:"notes" swaggertype:"object"`
	PartialPayment        bool                       `json:"partial_payment"`
	FirstPaymentMinAmount *decimal.Decimal           `json:"first_payment_min_amount" swaggertype:"number" example:"100"`
	PaymentCapture        bool                       `json:"payment_capture"`
}

// StringNotes returns the notes with every value rendered as text.
func (r CreateOrderRequestDTO) StringNotes() map[string]string {
	if len(r.Notes) == 0 {
		return nil
	}
	notes := make(map[string]string, len(r.Notes))
	for k, raw := range r.Notes {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			notes[k] = s
			continue
		}
		notes[k] = strings.TrimSpace(string(raw))
	}
	return notes
}
