package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/placeshare/places-service/internal/domain"
)

type txRepo struct {
	tx *sql.Tx
}

func (t *txRepo) GetForUpdate(ctx context.Context, id string) (*domain.Place, error) {
	p, err := scanPlace(t.tx.QueryRowContext(ctx, getPlaceForUpdateSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlaceNotFound()
		}
		return nil, domain.ErrStorage(err)
	}
	return p, nil
}

func (t *txRepo) Insert(ctx context.Context, p *domain.Place) error {
	_, err := t.tx.ExecContext(ctx, insertPlaceSQL,
		p.ID, p.CreatorID, p.Title, p.Description, p.Address,
		p.Location.Lat, p.Location.Lng, p.ImageKey, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return domain.ErrStorage(err)
	}
	return nil
}

func (t *txRepo) Delete(ctx context.Context, id string) error {
	res, err := t.tx.ExecContext(ctx, deletePlaceSQL, id)
	if err != nil {
		return domain.ErrStorage(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrPlaceNotFound()
	}
	return nil
}

func (t *txRepo) Link(ctx context.Context, userID, placeID string) error {
	// place_id is the primary key: a place sits in at most one user's set,
	// so a second link fails at the constraint.
	_, err := t.tx.ExecContext(ctx, linkPlaceSQL, placeID, userID)
	if err != nil {
		return domain.ErrStorage(err)
	}
	return nil
}

func (t *txRepo) Unlink(ctx context.Context, userID, placeID string) error {
	res, err := t.tx.ExecContext(ctx, unlinkPlaceSQL, placeID, userID)
	if err != nil {
		return domain.ErrStorage(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrStorage(errors.New("link row missing"))
	}
	return nil
}
