package eventbus

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// HandlerFunc consumes a published event envelope.
type HandlerFunc func(ctx context.Context, env *Envelope) error

// InProcessEventBus is an in-memory event bus for local mode. Events are
// delivered synchronously to subscribers registered for their routing key;
// handler errors are logged, never propagated to the publisher.
type InProcessEventBus struct {
	handlers map[string][]HandlerFunc
	logger   *slog.Logger
	mu       sync.Mutex
}

// NewInProcessEventBus creates a new in-process event bus.
func NewInProcessEventBus(logger *slog.Logger) *InProcessEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &InProcessEventBus{
		handlers: make(map[string][]HandlerFunc),
		logger:   logger,
	}
}

// Subscribe registers a handler for a routing key.
func (b *InProcessEventBus) Subscribe(routingKey string, h HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[routingKey] = append(b.handlers[routingKey], h)
}

// Publish dispatches the payload to all handlers for the routing key.
func (b *InProcessEventBus) Publish(ctx context.Context, routingKey string, payload []byte) error {
	b.mu.Lock()
	handlers := b.handlers[routingKey]
	b.mu.Unlock()

	env := &Envelope{}
	if err := json.Unmarshal(payload, env); err != nil {
		b.logger.Error("failed to unmarshal event payload",
			"routing_key", routingKey,
			"error", err,
		)
		return nil
	}
	if env.RoutingKey == "" {
		env.RoutingKey = routingKey
	}

	start := time.Now()
	for _, h := range handlers {
		if err := h(ctx, env); err != nil {
			b.logger.Error("event handler failed",
				"routing_key", routingKey,
				"event_id", env.EventID,
				"error", err,
			)
		}
	}

	b.logger.Debug("event dispatched",
		"routing_key", routingKey,
		"handlers", len(handlers),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// Close implements Publisher. The in-process bus holds no connection.
func (b *InProcessEventBus) Close() error {
	return nil
}
