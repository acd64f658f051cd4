package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

//go:generate mockgen -source=jwt.go -destination=mocks_jwt.go -package=auth

type TokenKind string

const (
	KindSession TokenKind = "session"
	KindAPI     TokenKind = "api"
)

const issuer = "cloudlesspay"

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid token claims")
	ErrEmptySecret   = errors.New("jwt secret cannot be empty")
)

type JWTServiceInterface interface {
	GenerateJWT(userID int, expirationTime time.Time) (string, error)
	GenerateAPIToken(userID int, jti string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	UserID int       `json:"user_id"`
	Kind   TokenKind `json:"kind"`
	jwt.StandardClaims
}

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) (*JWTService, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &JWTService{secret: []byte(secret)}, nil
}

// GenerateJWT issues a short-lived session token.
func (s *JWTService) GenerateJWT(userID int, expirationTime time.Time) (string, error) {
	claims := Claims{
		UserID: userID,
		Kind:   KindSession,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    issuer,
		},
	}
	return s.sign(claims)
}

// GenerateAPIToken issues a non-expiring API token identified by jti.
// Its lifetime ends only through revocation.
func (s *JWTService) GenerateAPIToken(userID int, jti string) (string, error) {
	if jti == "" {
		return "", fmt.Errorf("%w: empty jti", ErrInvalidClaims)
	}
	claims := Claims{
		UserID: userID,
		Kind:   KindAPI,
		StandardClaims: jwt.StandardClaims{
			Id:       jti,
			IssuedAt: time.Now().Unix(),
			Issuer:   issuer,
		},
	}
	return s.sign(claims)
}

func (s *JWTService) sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Issuer != issuer {
		return nil, ErrInvalidClaims
	}
	switch claims.Kind {
	case KindSession:
	case KindAPI:
		if claims.Id == "" {
			return nil, ErrInvalidClaims
		}
	default:
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
