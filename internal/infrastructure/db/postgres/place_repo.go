package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/placeshare/places-service/internal/application/places"
	"github.com/placeshare/places-service/internal/domain"
)

type PlaceRepo struct {
	db *sql.DB
}

func NewPlaceRepo(db *sql.DB) *PlaceRepo { return &PlaceRepo{db: db} }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlace(row rowScanner) (*domain.Place, error) {
	var p domain.Place
	err := row.Scan(
		&p.ID, &p.CreatorID, &p.Title, &p.Description, &p.Address,
		&p.Location.Lat, &p.Location.Lng, &p.ImageKey, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlaceRepo) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	p, err := scanPlace(r.db.QueryRowContext(ctx, getPlaceSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlaceNotFound()
		}
		return nil, domain.ErrStorage(err)
	}
	return p, nil
}

func (r *PlaceRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Place, error) {
	rows, err := r.db.QueryContext(ctx, listPlacesByUserSQL, userID)
	if err != nil {
		return nil, domain.ErrStorage(err)
	}
	defer rows.Close()

	out := make([]*domain.Place, 0)
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, domain.ErrStorage(err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStorage(err)
	}
	return out, nil
}

func (r *PlaceRepo) Update(ctx context.Context, p *domain.Place) error {
	res, err := r.db.ExecContext(ctx, updatePlaceSQL,
		p.ID, p.Title, p.Description, p.UpdatedAt,
	)
	if err != nil {
		return domain.ErrStorage(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrPlaceNotFound()
	}
	return nil
}

func (r *PlaceRepo) WithTx(ctx context.Context, fn func(tr places.TxRepo) error) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
		ReadOnly:  false,
	})
	if err != nil {
		return domain.ErrStorage(err)
	}

	tr := &txRepo{tx: tx}

	defer func() {
		// Safety: in case fn panics, rollback to avoid leaked tx.
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tr); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return domain.ErrStorage(err)
	}
	return nil
}
