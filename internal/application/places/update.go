package places

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/placeshare/places-service/internal/domain"
)

type UpdateCmd struct {
	ActorID string
	PlaceID string

	Title       *string
	Description *string
}

// Update patches the mutable fields of a place. Creator-only; concurrent
// updates are not serialized beyond the store write, last writer wins.
func (s *Service) Update(ctx context.Context, cmd UpdateCmd) (*domain.Place, error) {
	p, err := s.repo.GetByID(ctx, cmd.PlaceID)
	if err != nil {
		return nil, err
	}

	if !p.IsCreator(cmd.ActorID) {
		return nil, domain.ErrNotCreator()
	}

	if err := p.ApplyUpdate(cmd.Title, cmd.Description, s.clock.Now()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	if s.cache != nil {
		key := cacheKeyPlace(p.ID)
		if err := s.cache.Delete(ctx, key); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache invalidate failed")
		}
	}

	return p, nil
}
