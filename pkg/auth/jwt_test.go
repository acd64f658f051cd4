package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newJWTService(t *testing.T) *JWTService {
	t.Helper()
	s, err := NewJWTService(testSecret)
	require.NoError(t, err)
	return s
}

func TestNewJWTService(t *testing.T) {
	_, err := NewJWTService("")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestGenerateJWT(t *testing.T) {
	jwtService := newJWTService(t)

	tests := []struct {
		name           string
		userID         int
		expirationTime time.Time
		expectError    bool
	}{
		{
			name:           "Valid Token",
			userID:         123,
			expirationTime: time.Now().Add(time.Hour),
			expectError:    false,
		},
		{
			name:           "Expired Token",
			userID:         123,
			expirationTime: time.Now().Add(-time.Hour),
			expectError:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.userID, tt.expirationTime)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestGenerateAPIToken(t *testing.T) {
	jwtService := newJWTService(t)

	token, err := jwtService.GenerateAPIToken(7, "7a4e1c1e-8d7b-4f4e-9b0b-2f0a3c5d6e7f")
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, KindAPI, claims.Kind)
	assert.Equal(t, "7a4e1c1e-8d7b-4f4e-9b0b-2f0a3c5d6e7f", claims.Id)
	assert.Zero(t, claims.ExpiresAt)

	_, err = jwtService.GenerateAPIToken(7, "")
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestValidateToken(t *testing.T) {
	jwtService := newJWTService(t)

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectKind  TokenKind
		expectError bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, time.Now().Add(time.Hour))
				return token
			},
			expectKind:  KindSession,
			expectError: false,
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Signed with another secret",
			setup: func() string {
				other, _ := NewJWTService("other-secret")
				token, _ := other.GenerateJWT(123, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Invalid Claims Type",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: true,
		},
		{
			name: "API token without jti",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					UserID:         1,
					Kind:           KindAPI,
					StandardClaims: jwt.StandardClaims{Issuer: issuer},
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
				assert.Equal(t, tt.expectKind, claims.Kind)
			}
		})
	}
}
