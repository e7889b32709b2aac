package users

import (
	"context"

	"github.com/placeshare/places-service/internal/domain"
)

// List returns all users. Password hashes are stripped at the DTO layer, not
// here, so the same User type serves auth flows.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.User{}
	}
	return out, nil
}
