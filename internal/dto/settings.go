package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreditsResponseDTO struct {
	TotalCredits         decimal.Decimal `json:"total_credits" swaggertype:"number" example:"188"`
	CreditsUsedThisMonth int             `json:"credits_used_this_month" example:"12"`
}

type MonthwiseCreditsResponseDTO struct {
	SelectedMonth string `json:"selected_month" example:"last-month"`
	CreditsUsed   int    `json:"credits_used" example:"40"`
}

type AddCreditsRequestDTO struct {
	Amount int64 `json:"amount" validate:"required,gt=0" example:"100"`
}

type AddCreditsResponseDTO struct {
	Message       string `json:"message" example:"Payment order created successfully."`
	OrderID       string `json:"order_id" example:"order_NZ3J8vQd0aZ2kF"`
	Amount        int64  `json:"amount" example:"10000"`
	RazorpayKeyID string `json:"razorpay_key_id" example:"rzp_live_platform"`
}

type PaymentSuccessRequestDTO struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
	Amount            int64  `json:"amount" validate:"required,gt=0" example:"10000"`
}

type PaymentSuccessResponseDTO struct {
	Message    string          `json:"message" example:"Payment verified and wallet updated"`
	NewBalance decimal.Decimal `json:"new_balance" swaggertype:"number" example:"300"`
}

type BillingAddressDTO struct {
	CompanyName   string `json:"company_name" validate:"max=200"`
	Phone         string `json:"phone" validate:"max=32"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address" validate:"max=500"`
	Country       string `json:"country" validate:"max=100"`
	State         string `json:"state" validate:"max=100"`
	City          string `json:"city" validate:"max=100"`
	Pincode       string `json:"pincode" validate:"max=16"`
	GSTRegistered bool   `json:"gst_registered"`
	GSTNumber     string `json:"gst_number" validate:"max=15"`
}

type BillingAddressResponseDTO struct {
	Message  string             `json:"message" example:"Billing addresses retrieved successfully."`
	Billings *BillingAddressDTO `json:"billings"`
}

// PaymentDTO is a display row: dates as dd-mm-yyyy, amounts as rupees.
type PaymentDTO struct {
	PaymentDate   string `json:"payment_date" example:"15-03-2024"`
	TransactionID string `json:"transaction_id" example:"pay_NZ3JQ7qk2m4x1Y"`
	Amount        string `json:"amount" example:"₹100.00"`
	Status        string `json:"status" example:"Completed"`
	PaymentMethod string `json:"payment_method" example:"upi"`
}

type APILogDTO struct {
	LogTime  time.Time `json:"log_time"`
	Endpoint string    `json:"endpoint"`
	Domain   string    `json:"domain"`
	Platform string    `json:"platform"`
	Response string    `json:"response"`
	Status   string    `json:"status"`
}

// TableResponseDTO is the DataTables server-side processing envelope.
type TableResponseDTO[T any] struct {
	Draw            int `json:"draw"`
	RecordsTotal    int `json:"recordsTotal"`
	RecordsFiltered int `json:"recordsFiltered"`
	Data            []T `json:"data"`
}
