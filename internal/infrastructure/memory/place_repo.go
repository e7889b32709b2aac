package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/placeshare/places-service/internal/application/places"
	"github.com/placeshare/places-service/internal/domain"
)

// PlaceRepo keeps places and the per-user link sets in process memory.
// WithTx snapshots both maps before running fn and restores them when fn
// fails, so callers observe the same all-or-nothing behavior as the
// postgres adapter.
type PlaceRepo struct {
	mu    sync.Mutex
	byID  map[string]domain.Place
	owner map[string]string // placeID -> userID
}

func NewPlaceRepo() *PlaceRepo {
	return &PlaceRepo{
		byID:  make(map[string]domain.Place),
		owner: make(map[string]string),
	}
}

func (r *PlaceRepo) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLocked(id)
}

func (r *PlaceRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Place, 0)
	for id, uid := range r.owner {
		if uid != userID {
			continue
		}
		p := r.byID[id]
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *PlaceRepo) Update(ctx context.Context, p *domain.Place) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrPlaceNotFound()
	}
	r.byID[p.ID] = *p
	return nil
}

func (r *PlaceRepo) WithTx(ctx context.Context, fn func(tr places.TxRepo) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byID := make(map[string]domain.Place, len(r.byID))
	for k, v := range r.byID {
		byID[k] = v
	}
	owner := make(map[string]string, len(r.owner))
	for k, v := range r.owner {
		owner[k] = v
	}

	if err := fn(&txRepo{r: r}); err != nil {
		r.byID = byID
		r.owner = owner
		return err
	}
	return nil
}

func (r *PlaceRepo) getLocked(id string) (*domain.Place, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPlaceNotFound()
	}
	return &p, nil
}

// txRepo operates under the lock already held by WithTx.
type txRepo struct {
	r *PlaceRepo
}

func (t *txRepo) GetForUpdate(ctx context.Context, id string) (*domain.Place, error) {
	return t.r.getLocked(id)
}

func (t *txRepo) Insert(ctx context.Context, p *domain.Place) error {
	if _, exists := t.r.byID[p.ID]; exists {
		return domain.ErrStorage(nil)
	}
	t.r.byID[p.ID] = *p
	return nil
}

func (t *txRepo) Delete(ctx context.Context, id string) error {
	if _, ok := t.r.byID[id]; !ok {
		return domain.ErrPlaceNotFound()
	}
	delete(t.r.byID, id)
	return nil
}

func (t *txRepo) Link(ctx context.Context, userID, placeID string) error {
	if _, linked := t.r.owner[placeID]; linked {
		return domain.ErrStorage(nil)
	}
	t.r.owner[placeID] = userID
	return nil
}

func (t *txRepo) Unlink(ctx context.Context, userID, placeID string) error {
	if t.r.owner[placeID] != userID {
		return domain.ErrStorage(nil)
	}
	delete(t.r.owner, placeID)
	return nil
}
