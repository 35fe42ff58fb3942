package events

import (
	"context"
	"time"
)

// Event types published on the change feed.
const (
	EventLedgerEntryCreated = "ledger.entry.created"
	EventLedgerEntryUpdated = "ledger.entry.updated"
	EventSaleCompleted      = "sale.completed"
	EventServiceOrderMoved  = "service.order.status_changed"
)

// ChangeEvent is one record on the change feed consumed by storefront
// clients and reporting pipelines.
type ChangeEvent struct {
	Type       string         `json:"type"`
	EntityID   string         `json:"entityID"`
	OccurredAt time.Time      `json:"occurredAt"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// Publisher pushes change events to the realtime feed. Publishing is
// best-effort: callers log failures but never roll back the originating
// mutation.
type Publisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
	Close() error
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(_ context.Context, _ ChangeEvent) error { return nil }
func (NoopPublisher) Close() error                                   { return nil }
