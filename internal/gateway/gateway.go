// Package gateway talks to a Razorpay-compatible payment gateway.
package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/pkg/clients"
	"go.uber.org/zap"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var (
	ErrBadRequest = errors.New("gateway: bad request")
	ErrUnexpected = errors.New("gateway: unexpected response")
)

// APIError is a non-2xx answer from the gateway.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway returned %d: %s %s", e.StatusCode, e.Code, e.Description)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode >= 400 && e.StatusCode < 500 {
		return ErrBadRequest
	}
	return ErrUnexpected
}

type OrderParams struct {
	Amount                int64             `json:"amount"`
	Currency              string            `json:"currency"`
	Receipt               string            `json:"receipt"`
	Notes                 map[string]string `json:"notes,omitempty"`
	PartialPayment        bool              `json:"partial_payment"`
	FirstPaymentMinAmount int64             `json:"first_payment_min_amount,omitempty"`
	PaymentCapture        bool              `json:"payment_capture"`
}

type Order struct {
	ID         string `json:"id"`
	Entity     string `json:"entity"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amount_paid"`
	AmountDue  int64  `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
	Notes      any    `json:"notes"`
	CreatedAt  int64  `json:"created_at"`
}

type Payment struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Method   string `json:"method"`
}

type errorEnvelope struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

type Client struct {
	baseURL string
	client  clients.HTTPClientI
	sleep   func(ctx context.Context, d time.Duration) error
}

func New(baseURL string, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: baseURL,
		client:  client,
		sleep:   sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func authHeaders(creds domain.Credentials) http.Header {
	h := http.Header{}
	token := base64.StdEncoding.EncodeToString([]byte(creds.KeyID + ":" + creds.KeySecret))
	h.Set("Authorization", "Basic "+token)
	h.Set("Content-Type", "application/json")
	return h
}

// CreateOrder is not retried: a repeated POST could create a second order.
func (c *Client) CreateOrder(ctx context.Context, creds domain.Credentials, params OrderParams) (*Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}

	statusCode, respBody, _, err := c.client.Post(ctx, c.baseURL+"/v1/orders", authHeaders(creds), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpected, err)
	}
	if statusCode != http.StatusOK {
		return nil, apiError(statusCode, respBody)
	}

	var order Order
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("%w: decode order: %v", ErrUnexpected, err)
	}
	return &order, nil
}

func (c *Client) FetchPayment(ctx context.Context, creds domain.Credentials, paymentID string) (*Payment, error) {
	statusCode, respBody, err := c.get(ctx, creds, "/v1/payments/"+url.PathEscape(paymentID))
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, apiError(statusCode, respBody)
	}

	var payment Payment
	if err := json.Unmarshal(respBody, &payment); err != nil {
		return nil, fmt.Errorf("%w: decode payment: %v", ErrUnexpected, err)
	}
	return &payment, nil
}

// ValidateCredentials reports whether the gateway accepts creds.
// Any answer other than 200 means the pair is not usable.
func (c *Client) ValidateCredentials(ctx context.Context, creds domain.Credentials) (bool, error) {
	statusCode, _, err := c.get(ctx, creds, "/v1/payments?count=1")
	if err != nil {
		return false, err
	}
	return statusCode == http.StatusOK, nil
}

func (c *Client) get(ctx context.Context, creds domain.Credentials, path string) (int, []byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, nil, err
		}

		statusCode, respBody, respHeaders, err := c.client.Get(ctx, c.baseURL+path, authHeaders(creds))
		if err != nil {
			lastErr = err
			zap.L().Warn("gateway request failed", zap.String("path", path), zap.Int("attempt", attempt), zap.Error(err))
			if attempt < maxRetries {
				if err := c.sleep(ctx, retryInterval*time.Duration(attempt)); err != nil {
					return 0, nil, err
				}
			}
			continue
		}

		if statusCode == http.StatusTooManyRequests && attempt < maxRetries {
			retryAfter := retryDelay(respHeaders, attempt)
			zap.L().Warn("gateway rate limit, retrying",
				zap.String("path", path),
				zap.Int("attempt", attempt),
				zap.Duration("retryAfter", retryAfter))
			if err := c.sleep(ctx, retryAfter); err != nil {
				return 0, nil, err
			}
			continue
		}
		return statusCode, respBody, nil
	}
	return 0, nil, fmt.Errorf("%w: after %d attempts: %v", ErrUnexpected, maxRetries, lastErr)
}

func retryDelay(headers http.Header, attempt int) time.Duration {
	retryAfter := retryInterval * time.Duration(attempt)
	if v := headers.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	return retryAfter
}

func apiError(statusCode int, body []byte) error {
	var env errorEnvelope
	_ = json.Unmarshal(body, &env)
	return &APIError{
		StatusCode:  statusCode,
		Code:        env.Error.Code,
		Description: env.Error.Description,
	}
}

// VerifyPaymentSignature checks the HMAC-SHA256 of "orderID|paymentID".
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
