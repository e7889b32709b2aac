package places

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/placeshare/places-service/internal/domain"
)

func (s *Service) Get(ctx context.Context, id string) (*domain.Place, error) {
	key := cacheKeyPlace(id)
	var cached domain.Place

	if s.cache != nil {
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache get failed")
		} else if found {
			zlog.Debug().Str("key", key).Msg("cache hit")
			return &cached, nil
		}
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, p, s.ttlPlace); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}

	return p, nil
}

// ListByUser returns the user's place set. A user with no places gets an
// empty slice; an unknown user is a not-found failure.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*domain.Place, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	out, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []*domain.Place{}
	}
	return out, nil
}
