package tokens

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/dto"
	"github.com/GlebRadaev/cloudlesspay/pkg/auth"
	"github.com/GlebRadaev/cloudlesspay/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*TokenHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withUser(r *http.Request, userID int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

func TestCreateAccessToken(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
		expectedError string
	}{
		{
			name: "Token issued",
			prepareMock: func() {
				service.EXPECT().Issue(gomock.Any(), 1).Return("api-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "api-token",
		},
		{
			name: "Token already exists",
			prepareMock: func() {
				service.EXPECT().Issue(gomock.Any(), 1).Return("", domain.ErrTokenAlreadyExists)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Access token already exists",
		},
		{
			name: "Insufficient credits",
			prepareMock: func() {
				service.EXPECT().Issue(gomock.Any(), 1).Return("", domain.ErrInsufficientCredits)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Insufficient credits",
		},
		{
			name: "Credentials not configured",
			prepareMock: func() {
				service.EXPECT().Issue(gomock.Any(), 1).Return("", domain.ErrCredentialsNotConfigured)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Credentials not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUser(httptest.NewRequest(http.MethodGet, "/auth/create-access-token", nil), 1)
			rr := httptest.NewRecorder()

			handler.CreateAccessToken(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			var resp dto.AccessTokenResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedToken, resp.AccessToken)
		})
	}
}

func TestGetAccessToken(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Active token",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 7).Return("api-token", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"access_token":"api-token"}`,
		},
		{
			name: "No token",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), 7).Return("", domain.ErrTokenNotFound)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Access token not found","message":"access token not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUser(httptest.NewRequest(http.MethodGet, "/auth/get-access-token", nil), 7)
			rr := httptest.NewRecorder()

			handler.GetAccessToken(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestDeleteAccessToken(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		userID       int
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Token revoked",
			userID: 1,
			prepareMock: func() {
				service.EXPECT().Revoke(gomock.Any(), 1).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Nothing to revoke",
			userID: 1,
			prepareMock: func() {
				service.EXPECT().Revoke(gomock.Any(), 1).Return(domain.ErrTokenNotFound)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Database failure",
			userID: 1,
			prepareMock: func() {
				service.EXPECT().Revoke(gomock.Any(), 1).Return(errors.New("connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "Unauthenticated",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodDelete, "/auth/delete-access-token", nil)
			if tt.userID != 0 {
				req = withUser(req, tt.userID)
			}
			rr := httptest.NewRecorder()

			handler.DeleteAccessToken(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
