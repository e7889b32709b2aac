package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placeshare/places-service/internal/domain"
)

func TestGoogle_Resolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "221B Baker Street, London", r.URL.Query().Get("input"))
		assert.Equal(t, "textquery", r.URL.Query().Get("inputtype"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"candidates": [{"geometry": {"location": {"lat": 51.52, "lng": -0.15}}}]
		}`))
	}))
	defer srv.Close()

	g := NewGoogle("test-key", srv.URL)
	loc, err := g.Resolve(context.Background(), "221B Baker Street, London")
	require.NoError(t, err)
	assert.Equal(t, domain.Location{Lat: 51.52, Lng: -0.15}, loc)
}

func TestGoogle_Resolve_ZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "candidates": []}`))
	}))
	defer srv.Close()

	g := NewGoogle("test-key", srv.URL)
	_, err := g.Resolve(context.Background(), "nowhere at all")
	assert.True(t, domain.Is(err, "geocoding_failed"))
}

func TestGoogle_Resolve_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGoogle("test-key", srv.URL)
	_, err := g.Resolve(context.Background(), "somewhere")
	assert.True(t, domain.Is(err, "geocoding_failed"))
}
