package places

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	appctx "github.com/placeshare/places-service/internal/pkg/context"

	"github.com/placeshare/places-service/internal/domain"
)

const (
	EventVersion  = 1
	EventProducer = "places-service"

	routingKeyPlaceCreated = "place.created"
	routingKeyPlaceDeleted = "place.deleted"
)

// Envelope is the stable contract for domain events emitted by this service.
// Consumers rely on version/producer/message_id/occurred_at + payload.
type Envelope[T any] struct {
	Version    int       `json:"version"`
	Producer   string    `json:"producer"`
	MessageID  string    `json:"message_id"`
	TraceID    string    `json:"trace_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    T         `json:"payload"`
}

type PlacePayload struct {
	PlaceID   string          `json:"place_id"`
	CreatorID string          `json:"creator_id"`
	Title     string          `json:"title"`
	Address   string          `json:"address"`
	Location  domain.Location `json:"location"`
	ImageKey  string          `json:"image_key,omitempty"`
}

func placeEventPayload(p *domain.Place) PlacePayload {
	return PlacePayload{
		PlaceID:   p.ID,
		CreatorID: p.CreatorID,
		Title:     p.Title,
		Address:   p.Address,
		Location:  p.Location,
		ImageKey:  p.ImageKey,
	}
}

func newEnvelope(ctx context.Context, now time.Time, payload PlacePayload) ([]byte, string, error) {
	messageID := uuid.NewString()
	env := Envelope[PlacePayload]{
		Version:    EventVersion,
		Producer:   EventProducer,
		MessageID:  messageID,
		TraceID:    appctx.RequestIDFromContext(ctx),
		OccurredAt: now.UTC(),
		Payload:    payload,
	}
	body, err := json.Marshal(env)
	if err != nil {
		return nil, "", err
	}
	return body, messageID, nil
}

type NoopPublisher struct{}

func (NoopPublisher) PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error {
	return nil
}
