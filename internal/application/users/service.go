package users

import (
	"time"

	"github.com/placeshare/places-service/internal/domain"
)

type Service struct {
	repo   Repo
	hasher PasswordHasher
	signer TokenSigner
	clock  func() time.Time

	accessTTL time.Duration
}

func NewService(repo Repo, hasher PasswordHasher, signer TokenSigner, accessTTL time.Duration) *Service {
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	return &Service{
		repo:      repo,
		hasher:    hasher,
		signer:    signer,
		clock:     func() time.Time { return time.Now().UTC() },
		accessTTL: accessTTL,
	}
}

// AuthTokens is the common token output for handler/DTO mapping.
type AuthTokens struct {
	AccessToken string
	TokenType   string // "Bearer"
	ExpiresIn   int64  // seconds
}

type AuthResult struct {
	User   domain.User
	Tokens AuthTokens
}

func (s *Service) issueTokens(userID, email string) (AuthTokens, error) {
	access, err := s.signer.SignAccessToken(userID, email, s.accessTTL)
	if err != nil {
		return AuthTokens{}, err
	}
	return AuthTokens{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}
