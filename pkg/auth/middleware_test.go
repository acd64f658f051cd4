package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	revocations := NewMockRevocationChecker(ctrl)
	jwtService := newJWTService(t)
	m := NewMiddleware(jwtService, revocations)

	sessionToken, err := jwtService.GenerateJWT(5, time.Now().Add(time.Hour))
	require.NoError(t, err)
	apiToken, err := jwtService.GenerateAPIToken(5, "jti-1")
	require.NoError(t, err)

	var seenUserID int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		wrap         func(http.Handler) http.Handler
		header       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:         "Missing header",
			wrap:         m.Session,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Malformed token",
			wrap:         m.Session,
			header:       "Bearer nope",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Session token on session route",
			wrap:         m.Session,
			header:       "Bearer " + sessionToken,
			expectedCode: http.StatusOK,
		},
		{
			name:         "API token on session route",
			wrap:         m.Session,
			header:       "Bearer " + apiToken,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Session token on API route",
			wrap:         m.APIToken,
			header:       "Bearer " + sessionToken,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Active API token",
			wrap:   m.APIToken,
			header: "Bearer " + apiToken,
			prepareMock: func() {
				revocations.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(false, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Revoked API token",
			wrap:   m.APIToken,
			header: "Bearer " + apiToken,
			prepareMock: func() {
				revocations.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(true, nil)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Revocation store failure",
			wrap:   m.APIToken,
			header: "Bearer " + apiToken,
			prepareMock: func() {
				revocations.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(false, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenUserID = 0
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			tt.wrap(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, 5, seenUserID)
			} else {
				assert.Zero(t, seenUserID)
			}
		})
	}
}
