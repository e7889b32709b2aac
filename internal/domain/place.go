package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Place struct {
	ID          string
	Title       string
	Description string
	Address     string
	Location    Location
	ImageKey    string
	CreatorID   string // immutable after creation

	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewPlace(creatorID, title, description, address, imageKey string, loc Location, now time.Time) (*Place, error) {
	creatorID = strings.TrimSpace(creatorID)
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	address = strings.TrimSpace(address)

	if creatorID == "" {
		return nil, ErrMissingField("creator")
	}
	if title == "" || len(title) > 120 {
		return nil, ErrInvalidField("title", "required, max 120 chars")
	}
	if len(description) < 5 || len(description) > 4000 {
		return nil, ErrInvalidField("description", "min 5 chars, max 4000")
	}
	if address == "" || len(address) > 300 {
		return nil, ErrInvalidField("address", "required, max 300 chars")
	}

	return &Place{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Address:     address,
		Location:    loc,
		ImageKey:    imageKey,
		CreatorID:   creatorID,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}, nil
}

// ApplyUpdate patches the mutable fields. Creator, address, location and
// image are fixed at creation time.
func (p *Place) ApplyUpdate(title, description *string, now time.Time) error {
	if title != nil {
		v := strings.TrimSpace(*title)
		if v == "" || len(v) > 120 {
			return ErrInvalidField("title", "required, max 120 chars")
		}
		p.Title = v
	}
	if description != nil {
		v := strings.TrimSpace(*description)
		if len(v) < 5 || len(v) > 4000 {
			return ErrInvalidField("description", "min 5 chars, max 4000")
		}
		p.Description = v
	}
	p.UpdatedAt = now.UTC()
	return nil
}

// IsCreator reports whether the acting user owns this place.
// Ownership comparison is identifier equality only.
func (p *Place) IsCreator(userID string) bool {
	return userID != "" && p.CreatorID == userID
}
