package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placeshare/places-service/internal/domain"
)

func newTestClient(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := New("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClient_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	in := domain.Place{
		ID:       "p1",
		Title:    "Empire State Building",
		Location: domain.Location{Lat: 40.7484, Lng: -73.9857},
	}
	require.NoError(t, c.Set(ctx, "place:p1", in, time.Minute))

	var out domain.Place
	hit, err := c.Get(ctx, "place:p1", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, in.Title, out.Title)
	assert.Equal(t, in.Location, out.Location)
}

func TestClient_GetMiss(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	var out domain.Place
	hit, err := c.Get(ctx, "place:absent", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	require.NoError(t, c.Set(ctx, "place:p1", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "place:p1"))

	var out string
	hit, err := c.Get(ctx, "place:p1", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	// deleting nothing is a no-op
	assert.NoError(t, c.Delete(ctx))
}
