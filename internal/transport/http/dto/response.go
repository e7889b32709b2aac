package dto

import "time"

// PlaceResp is the stable API response model.
type PlaceResp struct {
	ID          string `json:"id"`
	CreatorID   string `json:"creator_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Address     string `json:"address"`

	Location LocationResp `json:"location"`

	// Derived from the stored key; empty when the place has no image.
	ImageURL string `json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LocationResp struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// UserResp never carries the password hash.
type UserResp struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type AuthResp struct {
	User        UserResp `json:"user"`
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
}
