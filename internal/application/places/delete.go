package places

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/placeshare/places-service/internal/domain"
)

// Delete removes a place and its entry in the owner's place set in one
// transaction. The stored image is released only after the commit;
// a release failure is logged and the operation still succeeds.
func (s *Service) Delete(ctx context.Context, actorID, placeID string) error {
	var deleted *domain.Place

	err := s.repo.WithTx(ctx, func(tr TxRepo) error {
		p, err := tr.GetForUpdate(ctx, placeID)
		if err != nil {
			return err
		}

		if !p.IsCreator(actorID) {
			return domain.ErrNotCreator()
		}

		if err := tr.Unlink(ctx, p.CreatorID, p.ID); err != nil {
			return err
		}
		if err := tr.Delete(ctx, p.ID); err != nil {
			return err
		}

		deleted = p
		return nil
	})
	if err != nil {
		return err
	}

	// Post-commit cleanup, all best-effort.
	if deleted.ImageKey != "" && s.images != nil {
		if err := s.images.Release(ctx, deleted.ImageKey); err != nil {
			zlog.Warn().Err(err).Str("image_key", deleted.ImageKey).Msg("image release failed")
		}
	}

	if s.cache != nil {
		key := cacheKeyPlace(deleted.ID)
		if err := s.cache.Delete(ctx, key); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache invalidate failed")
		}
	}

	s.publishAfterCommit(ctx, routingKeyPlaceDeleted, placeEventPayload(deleted))

	return nil
}
