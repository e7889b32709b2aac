package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/placeshare/places-service/internal/application/users"
	"github.com/placeshare/places-service/internal/domain"
	"github.com/placeshare/places-service/internal/transport/http/response"
)

type ctxKey string

const (
	ctxUserID    ctxKey = "user_id"
	ctxUserEmail ctxKey = "user_email"
)

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	VerifyAccessToken(token string) (users.TokenClaims, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuth(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Require rejects the request unless it carries a valid bearer token.
// The authenticated user's id and email land in the request context.
func (a *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := bearerToken(r)
		if err != nil {
			response.WriteError(w, r, err)
			return
		}

		claims, err := a.verifier.VerifyAccessToken(raw)
		if err != nil {
			response.WriteError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID)
		ctx = context.WithValue(ctx, ctxUserEmail, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, error) {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if h == "" {
		return "", domain.ErrTokenMissing()
	}
	if !strings.HasPrefix(h, "Bearer ") {
		return "", domain.ErrTokenInvalid()
	}
	raw := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if raw == "" {
		return "", domain.ErrTokenMissing()
	}
	return raw, nil
}

func UserID(r *http.Request) string {
	if v, ok := r.Context().Value(ctxUserID).(string); ok {
		return v
	}
	return ""
}

func UserEmail(r *http.Request) string {
	if v, ok := r.Context().Value(ctxUserEmail).(string); ok {
		return v
	}
	return ""
}
