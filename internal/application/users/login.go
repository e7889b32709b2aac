package users

import (
	"context"

	"github.com/placeshare/places-service/internal/domain"
)

// Login authenticates a user and issues an access token.
// IMPORTANT: must not leak whether the email exists (avoid user enumeration).
func (s *Service) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = domain.NormalizeEmail(email)

	if email == "" || password == "" {
		return AuthResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Hide not-found behind invalid credentials
		if domain.KindOf(err) == domain.KindNotFound {
			return AuthResult{}, domain.ErrInvalidCredentials()
		}
		return AuthResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return AuthResult{}, domain.ErrInvalidCredentials()
	}

	toks, err := s.issueTokens(u.ID, u.Email)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: u, Tokens: toks}, nil
}
