package clients

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"
)

//go:generate mockgen -source=http_client.go -destination=mocks.go -package=clients

const (
	defaultTimeout   = 15 * time.Second
	maxResponseBytes = 1 << 20
	userAgent        = "cloudlesspay/1.0"
)

var (
	ErrFailedCloseResponseBody = errors.New("failed close response body")
	ErrResponseTooLarge        = errors.New("response body exceeds limit")
)

// HTTPClientI is the transport used by outbound API clients.
type HTTPClientI interface {
	Get(ctx context.Context, url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error)
	Post(ctx context.Context, url string, headers http.Header, body []byte) (statusCode int, respBody []byte, respHeaders http.Header, err error)
}

type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient() *HTTPClient {
	return NewHTTPClientWithTimeout(defaultTimeout)
}

func NewHTTPClientWithTimeout(timeout time.Duration) *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

func (h *HTTPClient) Get(ctx context.Context, url string, headers http.Header) (int, []byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, nil, nil, err
	}
	return h.send(req, headers)
}

func (h *HTTPClient) Post(ctx context.Context, url string, headers http.Header, body []byte) (int, []byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, nil, err
	}
	return h.send(req, headers)
}

func (h *HTTPClient) send(req *http.Request, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	for k, v := range headers {
		req.Header[k] = v
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return 0, nil, nil, err
	}
	if len(respBody) > maxResponseBytes {
		return resp.StatusCode, nil, resp.Header, ErrResponseTooLarge
	}
	return resp.StatusCode, respBody, resp.Header, nil
}
