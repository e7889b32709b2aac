package places

import (
	"time"
)

// Service coordinates cross-entity place mutations. Create and Delete span
// the place row and the owner's place set inside one transactional scope;
// Update and Delete are creator-only.
type Service struct {
	repo   PlaceRepo
	users  UserReader
	geo    Geocoder
	images ImageStore
	cache  Cache
	pub    EventPublisher
	clock  Clock

	ttlPlace time.Duration
}

func New(
	repo PlaceRepo,
	users UserReader,
	geo Geocoder,
	images ImageStore,
	clock Clock,
	pub EventPublisher,
	cache Cache,
	ttlPlace time.Duration,
) *Service {
	if ttlPlace == 0 {
		ttlPlace = 5 * time.Minute
	}
	if pub == nil {
		pub = NoopPublisher{}
	}
	return &Service{
		repo:     repo,
		users:    users,
		geo:      geo,
		images:   images,
		cache:    cache,
		pub:      pub,
		clock:    clock,
		ttlPlace: ttlPlace,
	}
}
