package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placeshare/places-service/internal/application/places"
	"github.com/placeshare/places-service/internal/domain"
)

func TestUserRepo_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	u, err := repo.Create(ctx, domain.User{ID: "u1", Name: "Ada", Email: "Ada@Example.com", PasswordHash: "h"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email)

	got, err := repo.GetByEmail(ctx, "ADA@example.COM")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	got, err = repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)

	_, err = repo.GetByID(ctx, "missing")
	assert.True(t, domain.Is(err, "user_not_found"))
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	_, err := repo.Create(ctx, domain.User{ID: "u1", Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.User{ID: "u2", Email: "ADA@example.com"})
	assert.True(t, domain.Is(err, "email_already_exists"))
}

func TestUserRepo_ListSorted(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	_, err := repo.Create(ctx, domain.User{ID: "u2", Email: "z@example.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.User{ID: "u1", Email: "a@example.com"})
	require.NoError(t, err)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a@example.com", got[0].Email)
}

func newPlace(t *testing.T, id, creator string, created time.Time) *domain.Place {
	t.Helper()
	return &domain.Place{
		ID:          id,
		Title:       "Empire State Building",
		Description: "One of the most famous sky scrapers in the world",
		Address:     "20 W 34th St, New York, NY 10001",
		Location:    domain.Location{Lat: 40.7484, Lng: -73.9857},
		CreatorID:   creator,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestPlaceRepo_TxCommit(t *testing.T) {
	ctx := context.Background()
	repo := NewPlaceRepo()
	now := time.Now().UTC()

	err := repo.WithTx(ctx, func(tr places.TxRepo) error {
		if err := tr.Insert(ctx, newPlace(t, "p1", "u1", now)); err != nil {
			return err
		}
		return tr.Link(ctx, "u1", "p1")
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.CreatorID)

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestPlaceRepo_TxRollback(t *testing.T) {
	ctx := context.Background()
	repo := NewPlaceRepo()
	boom := errors.New("boom")

	err := repo.WithTx(ctx, func(tr places.TxRepo) error {
		if err := tr.Insert(ctx, newPlace(t, "p1", "u1", time.Now())); err != nil {
			return err
		}
		if err := tr.Link(ctx, "u1", "p1"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repo.GetByID(ctx, "p1")
	assert.True(t, domain.Is(err, "place_not_found"))

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPlaceRepo_DeleteUnlinks(t *testing.T) {
	ctx := context.Background()
	repo := NewPlaceRepo()
	now := time.Now().UTC()

	err := repo.WithTx(ctx, func(tr places.TxRepo) error {
		if err := tr.Insert(ctx, newPlace(t, "p1", "u1", now)); err != nil {
			return err
		}
		return tr.Link(ctx, "u1", "p1")
	})
	require.NoError(t, err)

	err = repo.WithTx(ctx, func(tr places.TxRepo) error {
		if err := tr.Delete(ctx, "p1"); err != nil {
			return err
		}
		return tr.Unlink(ctx, "u1", "p1")
	})
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, "p1")
	assert.True(t, domain.Is(err, "place_not_found"))

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPlaceRepo_LinkTwiceFails(t *testing.T) {
	ctx := context.Background()
	repo := NewPlaceRepo()

	err := repo.WithTx(ctx, func(tr places.TxRepo) error {
		if err := tr.Insert(ctx, newPlace(t, "p1", "u1", time.Now())); err != nil {
			return err
		}
		if err := tr.Link(ctx, "u1", "p1"); err != nil {
			return err
		}
		return tr.Link(ctx, "u2", "p1")
	})
	require.Error(t, err)

	// the failed second link rolled the whole tx back
	_, err = repo.GetByID(ctx, "p1")
	assert.True(t, domain.Is(err, "place_not_found"))
}

func TestPlaceRepo_UpdatePersists(t *testing.T) {
	ctx := context.Background()
	repo := NewPlaceRepo()
	now := time.Now().UTC()

	err := repo.WithTx(ctx, func(tr places.TxRepo) error {
		return tr.Insert(ctx, newPlace(t, "p1", "u1", now))
	})
	require.NoError(t, err)

	p, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	p.Title = "Renamed"
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
}
