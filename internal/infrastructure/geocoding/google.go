package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/placeshare/places-service/internal/domain"
)

const DefaultBaseURL = "https://maps.googleapis.com/maps/api/place/findplacefromtext/json"

// Google resolves free-form addresses through the Places
// find-place-from-text endpoint.
type Google struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGoogle(apiKey, baseURL string) *Google {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Google{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type findPlaceResponse struct {
	Status     string `json:"status"`
	Candidates []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"candidates"`
}

func (g *Google) Resolve(ctx context.Context, address string) (domain.Location, error) {
	q := url.Values{}
	q.Set("fields", "geometry")
	q.Set("input", address)
	q.Set("inputtype", "textquery")
	q.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return domain.Location{}, domain.ErrGeocodingFailed(err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return domain.Location{}, domain.ErrGeocodingFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Location{}, domain.ErrGeocodingFailed(fmt.Errorf("geocoder status %d", resp.StatusCode))
	}

	var body findPlaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Location{}, domain.ErrGeocodingFailed(err)
	}

	if body.Status != "OK" || len(body.Candidates) == 0 {
		return domain.Location{}, domain.ErrGeocodingFailed(fmt.Errorf("no result for address (status %s)", body.Status))
	}

	loc := body.Candidates[0].Geometry.Location
	return domain.Location{Lat: loc.Lat, Lng: loc.Lng}, nil
}
