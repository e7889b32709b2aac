package users

import (
	"context"
	"time"

	"github.com/placeshare/places-service/internal/domain"
)

// Repo is the persistence port for users.
type Repo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// PasswordHasher abstracts bcrypt.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

type TokenClaims struct {
	UserID string
	Email  string
	Exp    time.Time
}

// TokenSigner issues and verifies access tokens (JWT).
// Used by the service and by the auth middleware.
type TokenSigner interface {
	SignAccessToken(userID, email string, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}
