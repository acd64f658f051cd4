package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID               int       `db:"id"`
	Username         string    `db:"username"`
	Email            string    `db:"email"`
	PasswordHash     string    `db:"password_hash"`
	GatewayKeyID     string    `db:"gateway_key_id"`
	GatewayKeySecret string    `db:"gateway_key_secret"`
	AccessToken      string    `db:"access_token"`
	JTI              string    `db:"jti"`
	IsActive         bool      `db:"is_active"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// HasCredentials reports whether both gateway credential parts are stored.
func (u *User) HasCredentials() bool {
	return u.GatewayKeyID != "" && u.GatewayKeySecret != ""
}

// HasActiveToken reports whether an API token is currently assigned.
func (u *User) HasActiveToken() bool {
	return u.AccessToken != "" && u.JTI != ""
}

type Wallet struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	Credits     decimal.Decimal `db:"credits"`
	LastUpdated time.Time       `db:"last_updated"`
}

type RevokedToken struct {
	ID        int       `db:"id"`
	JTI       string    `db:"jti"`
	RevokedAt time.Time `db:"revoked_at"`
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
	PaymentRefunded  PaymentStatus = "Refunded"
)

type PaymentHistory struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	TransactionID string          `db:"transaction_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentDate   time.Time       `db:"payment_date"`
	PaymentMethod string          `db:"payment_method"`
	Status        PaymentStatus   `db:"status"`
}

type LogStatus string

const (
	LogSuccess LogStatus = "success"
	LogFailure LogStatus = "failure"
)

type APILog struct {
	ID       int       `db:"id"`
	UserID   int       `db:"user_id"`
	LogTime  time.Time `db:"log_time"`
	Endpoint string    `db:"endpoint"`
	Domain   string    `db:"domain"`
	Platform string    `db:"platform"`
	Response string    `db:"response"`
	Status   LogStatus `db:"status"`
}

type BillingAddress struct {
	CompanyName   string `json:"company_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Country       string `json:"country"`
	State         string `json:"state"`
	City          string `json:"city"`
	Pincode       string `json:"pincode"`
	GSTRegistered bool   `json:"gst_registered"`
	GSTNumber     string `json:"gst_number"`
}

// Credentials is a decrypted gateway key pair. It must never be serialized
// into a response or a log line.
type Credentials struct {
	KeyID     string
	KeySecret string
}

// ListQuery carries DataTables-style paging, search and ordering.
type ListQuery struct {
	Start       int
	Length      int
	Search      string
	OrderColumn int
	OrderDir    string
	Draw        int
}

const (
	DefaultPageLength = 10
	MaxPageLength     = 100
)

// Normalized clamps paging to sane bounds.
func (q ListQuery) Normalized() ListQuery {
	if q.Start < 0 {
		q.Start = 0
	}
	if q.Length <= 0 {
		q.Length = DefaultPageLength
	}
	if q.Length > MaxPageLength {
		q.Length = MaxPageLength
	}
	return q
}

type PaymentPage struct {
	Total    int
	Filtered int
	Items    []PaymentHistory
}

type LogPage struct {
	Total    int
	Filtered int
	Items    []APILog
}
