package places

import (
	"context"
	"errors"

	zlog "github.com/rs/zerolog/log"

	"github.com/placeshare/places-service/internal/domain"
)

type CreateCmd struct {
	ActorID string

	Title       string
	Description string
	Address     string
	ImageKey    string
}

// Create builds a new place owned by the acting user and links it into the
// user's place set. Both writes ride one transaction: a reader never sees the
// place without the link or the link without the place.
func (s *Service) Create(ctx context.Context, cmd CreateCmd) (*domain.Place, error) {
	if _, err := s.users.GetByID(ctx, cmd.ActorID); err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, domain.ErrCreatorNotFound()
		}
		return nil, err
	}

	loc, err := s.geo.Resolve(ctx, cmd.Address)
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			return nil, err
		}
		return nil, domain.ErrGeocodingFailed(err)
	}

	p, err := domain.NewPlace(cmd.ActorID, cmd.Title, cmd.Description, cmd.Address, cmd.ImageKey, loc, s.clock.Now())
	if err != nil {
		return nil, err
	}

	err = s.repo.WithTx(ctx, func(tr TxRepo) error {
		if err := tr.Insert(ctx, p); err != nil {
			return err
		}
		return tr.Link(ctx, cmd.ActorID, p.ID)
	})
	if err != nil {
		return nil, err
	}

	s.publishAfterCommit(ctx, routingKeyPlaceCreated, placeEventPayload(p))

	return p, nil
}

// publishAfterCommit emits a lifecycle event once the write is durable.
// Best-effort: a broker failure is logged, never surfaced.
func (s *Service) publishAfterCommit(ctx context.Context, routingKey string, payload PlacePayload) {
	env, messageID, err := newEnvelope(ctx, s.clock.Now(), payload)
	if err != nil {
		zlog.Warn().Err(err).Str("routing_key", routingKey).Msg("event envelope encode failed")
		return
	}
	if err := s.pub.PublishEvent(ctx, routingKey, messageID, env); err != nil {
		zlog.Warn().Err(err).Str("routing_key", routingKey).Msg("event publish failed")
	}
}
