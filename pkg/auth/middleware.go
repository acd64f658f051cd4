package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/cloudlesspay/pkg/utils"
	"go.uber.org/zap"
)

//go:generate mockgen -source=middleware.go -destination=mocks_middleware.go -package=auth

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
	JTIKey    ContextKey = "jti"
)

type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type Middleware struct {
	jwtService  JWTServiceInterface
	revocations RevocationChecker
}

func NewMiddleware(jwtService JWTServiceInterface, revocations RevocationChecker) *Middleware {
	return &Middleware{
		jwtService:  jwtService,
		revocations: revocations,
	}
}

// Session admits requests carrying a valid session token.
func (m *Middleware) Session(next http.Handler) http.Handler {
	return m.authenticate(KindSession, next)
}

// APIToken admits requests carrying a valid, unrevoked API token.
func (m *Middleware) APIToken(next http.Handler) http.Handler {
	return m.authenticate(KindAPI, next)
}

func (m *Middleware) authenticate(kind TokenKind, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.jwtService.ValidateToken(token)
		if err != nil || claims.Kind != kind {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		if kind == KindAPI {
			revoked, err := m.revocations.IsRevoked(r.Context(), claims.Id)
			if err != nil {
				zap.L().Error("failed to check token revocation", zap.Error(err))
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if revoked {
				utils.RespondWithError(w, http.StatusUnauthorized, "Token has been revoked")
				return
			}
			ctx = context.WithValue(ctx, JTIKey, claims.Id)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok && userID != 0
}
