package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestSendOTPHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name            string
		body            string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "Successful send",
			body: `{"email":"alice@example.com","username":"alice"}`,
			prepareMock: func() {
				service.EXPECT().SendOTP(gomock.Any(), "alice@example.com", "alice").Return(nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "OTP sent successfully",
		},
		{
			name: "Email already registered",
			body: `{"email":"alice@example.com","username":"alice"}`,
			prepareMock: func() {
				service.EXPECT().SendOTP(gomock.Any(), "alice@example.com", "alice").Return(domain.ErrUserExists)
			},
			expectedCode:    http.StatusForbidden,
			expectedMessage: domain.ErrUserExists.Error(),
		},
		{
			name:            "Invalid email",
			body:            `{"email":"not-an-email","username":"alice"}`,
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "email must be a valid email",
		},
		{
			name:            "Invalid request body",
			body:            `{invalid json`,
			prepareMock:     func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name: "Mailer failure",
			body: `{"email":"alice@example.com","username":"alice"}`,
			prepareMock: func() {
				service.EXPECT().SendOTP(gomock.Any(), "alice@example.com", "alice").Return(errors.New("smtp down"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/auth/send-otp", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.SendOTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			var resp utils.Response
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

func TestVerifyOTPHandler(t *testing.T) {
	handler, service := NewMock(t)

	validBody := `{"email":"alice@example.com","otp":"042917","username":"alice","password":"s3cretpass"}`

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "alice@example.com", "042917", "alice", "s3cretpass").
					Return(&domain.User{ID: 1, Email: "alice@example.com"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Invalid otp",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrInvalidOTP)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Invalid OTP",
		},
		{
			name:          "Malformed otp",
			body:          `{"email":"alice@example.com","otp":"12ab","username":"alice","password":"s3cretpass"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: http.StatusText(http.StatusBadRequest),
		},
		{
			name:          "Short password",
			body:          `{"email":"alice@example.com","otp":"042917","username":"alice","password":"short"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: http.StatusText(http.StatusBadRequest),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/auth/verify-otp", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.VerifyOTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			var resp utils.Response
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedError, resp.Error)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedHeader string
		expectedError  string
	}{
		{
			name: "Successful login",
			body: `{"email":"alice@example.com","password":"s3cretpass"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "alice@example.com", "s3cretpass").
					Return(&domain.User{ID: 1, Email: "alice@example.com"}, nil)
				service.EXPECT().
					GenerateToken(1).
					Return("some-jwt-token", nil)
			},
			expectedCode:   http.StatusOK,
			expectedHeader: "Bearer some-jwt-token",
		},
		{
			name: "Invalid credentials",
			body: `{"email":"alice@example.com","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "alice@example.com", "wrongpassword").
					Return(nil, domain.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: http.StatusText(http.StatusBadRequest),
		},
		{
			name: "Error generating token",
			body: `{"email":"alice@example.com","password":"s3cretpass"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "alice@example.com", "s3cretpass").
					Return(&domain.User{ID: 1}, nil)
				service.EXPECT().
					GenerateToken(1).
					Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedHeader, rr.Header().Get("Authorization"))

			var resp utils.Response
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedError, resp.Error)
		})
	}
}
