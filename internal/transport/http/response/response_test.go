package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placeshare/places-service/internal/domain"
)

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", domain.ErrMissingField("title"), http.StatusUnprocessableEntity, "missing_field"},
		{"auth", domain.ErrTokenMissing(), http.StatusUnauthorized, "token_missing"},
		{"forbidden", domain.ErrNotCreator(), http.StatusForbidden, "not_creator"},
		{"not_found", domain.ErrPlaceNotFound(), http.StatusNotFound, "place_not_found"},
		{"conflict", domain.ErrEmailAlreadyExists(), http.StatusConflict, "email_already_exists"},
		{"geocoding", domain.ErrGeocodingFailed(errors.New("zero results")), http.StatusNotFound, "geocoding_failed"},
		{"storage", domain.ErrStorage(errors.New("io fail")), http.StatusInternalServerError, "storage_error"},
		{"plain_error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			WriteError(w, r, tc.err)

			assert.Equal(t, tc.status, w.Code)

			var body ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Error.Code)
		})
	}
}

func TestWriteError_SanitizesStorageCause(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteError(w, r, domain.ErrStorage(errors.New("dial tcp 10.0.0.5:5432: connection refused")))

	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestOKAndCreated(t *testing.T) {
	w := httptest.NewRecorder()
	OK(w, map[string]string{"k": "v"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"k":"v"}}`, w.Body.String())

	w = httptest.NewRecorder()
	Created(w, map[string]string{"id": "p1"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	NoContent(w)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}

	t.Run("valid", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x"}`))
		var p payload
		require.NoError(t, DecodeJSON(r, &p))
		assert.Equal(t, "x", p.Title)
	})

	t.Run("garbage", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{not json`))
		var p payload
		err := DecodeJSON(r, &p)
		assert.True(t, domain.Is(err, "invalid_json"))
	})

	t.Run("trailing_values", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x"}{"title":"y"}`))
		var p payload
		err := DecodeJSON(r, &p)
		assert.True(t, domain.Is(err, "invalid_json"))
	})
}
