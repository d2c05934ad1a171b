package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	sharedDomain "github.com/pawplan/pawplan/internal/shared/domain"
)

// Publisher defines the interface for publishing events to a bus.
type Publisher interface {
	// Publish sends a message to the event bus.
	Publish(ctx context.Context, routingKey string, payload []byte) error

	// Close closes the publisher connection.
	Close() error
}

// Envelope is the wire form of a published domain event.
type Envelope struct {
	EventID       string          `json:"event_id"`
	AggregateID   string          `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	RoutingKey    string          `json:"routing_key"`
	OccurredAt    string          `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
}

// PublishDomainEvents marshals and publishes each uncommitted event from an
// aggregate. Failures abort at the first bad event.
func PublishDomainEvents(ctx context.Context, pub Publisher, events []sharedDomain.DomainEvent) error {
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", event.RoutingKey(), err)
		}
		env := Envelope{
			EventID:       event.EventID().String(),
			AggregateID:   event.AggregateID().String(),
			AggregateType: event.AggregateType(),
			RoutingKey:    event.RoutingKey(),
			OccurredAt:    event.OccurredAt().Format("2006-01-02T15:04:05.000Z07:00"),
			Payload:       payload,
		}
		body, err := json.Marshal(env)
		if err != nil {
			return fmt.Errorf("marshal envelope %s: %w", event.RoutingKey(), err)
		}
		if err := pub.Publish(ctx, event.RoutingKey(), body); err != nil {
			return fmt.Errorf("publish %s: %w", event.RoutingKey(), err)
		}
	}
	return nil
}
