package users

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/placeshare/places-service/internal/domain"
)

func (s *Service) Register(ctx context.Context, name, email, password, imageKey string) (AuthResult, error) {
	name = strings.TrimSpace(name)
	email = domain.NormalizeEmail(email)

	if name == "" {
		return AuthResult{}, domain.ErrMissingField("name")
	}
	if email == "" {
		return AuthResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return AuthResult{}, domain.ErrMissingField("password")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return AuthResult{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		ImageKey:     imageKey,
		CreatedAt:    s.clock(),
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return AuthResult{}, err
	}

	toks, err := s.issueTokens(created.ID, created.Email)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: created, Tokens: toks}, nil
}
