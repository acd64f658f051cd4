package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_GetAndPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Method", r.Method)
		w.Header().Set("X-Auth", r.Header.Get("Authorization"))
		w.Header().Set("X-Agent", r.Header.Get("User-Agent"))
		w.Header().Set("X-Accept", r.Header.Get("Accept"))
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	client := NewHTTPClient()
	headers := http.Header{}
	headers.Set("Authorization", "Basic abc")

	status, body, respHeaders, err := client.Post(context.Background(), srv.URL, headers, []byte(`{"amount":100}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, `{"amount":100}`, string(body))
	assert.Equal(t, http.MethodPost, respHeaders.Get("X-Method"))
	assert.Equal(t, "Basic abc", respHeaders.Get("X-Auth"))
	assert.Equal(t, userAgent, respHeaders.Get("X-Agent"))
	assert.Equal(t, "application/json", respHeaders.Get("X-Accept"))

	status, body, respHeaders, err = client.Get(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Empty(t, body)
	assert.Equal(t, http.MethodGet, respHeaders.Get("X-Method"))
}

func TestHTTPClient_ResponseTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, strings.Repeat("x", maxResponseBytes+10))
	}))
	defer srv.Close()

	_, body, _, err := NewHTTPClient().Get(context.Background(), srv.URL, nil)
	assert.ErrorIs(t, err, ErrResponseTooLarge)
	assert.Nil(t, body)
}

func TestHTTPClient_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, _, err := NewHTTPClient().Get(ctx, srv.URL, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPClient_TransportError(t *testing.T) {
	client := NewHTTPClientWithTimeout(time.Second)
	_, _, _, err := client.Get(context.Background(), "http://127.0.0.1:0/unreachable", nil)
	assert.Error(t, err)
}
