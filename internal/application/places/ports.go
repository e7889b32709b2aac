package places

import (
	"context"
	"time"

	"github.com/placeshare/places-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

// PlaceRepo is the persistence port for places. WithTx opens the
// transactional envelope for the cross-entity mutations: everything done
// through the TxRepo either commits as a whole or is rolled back before the
// error reaches the caller.
type PlaceRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Place, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Place, error)
	Update(ctx context.Context, p *domain.Place) error

	WithTx(ctx context.Context, fn func(tr TxRepo) error) error
}

// TxRepo is the slice of the store visible inside a transaction. Linking and
// unlinking maintain the user's place set; the place row and its link are
// only ever written together.
type TxRepo interface {
	GetForUpdate(ctx context.Context, id string) (*domain.Place, error)
	Insert(ctx context.Context, p *domain.Place) error
	Delete(ctx context.Context, id string) error
	Link(ctx context.Context, userID, placeID string) error
	Unlink(ctx context.Context, userID, placeID string) error
}

// UserReader is the minimal identity-store view the coordinator needs.
type UserReader interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
}

// Geocoder resolves a free-text address to coordinates. Provider failures
// surface as domain geocoding errors.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (domain.Location, error)
}

// ImageStore releases stored upload objects. Release failures are logged by
// the caller, never surfaced.
type ImageStore interface {
	Release(ctx context.Context, key string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error
}
