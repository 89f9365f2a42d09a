// Package natsio publishes domain events to a NATS broker. Each event goes
// out as a JSON message on a subject derived from its name, e.g.
// "starwings.events.FlightAllocated", so downstream consumers can subscribe
// per event type or to the whole stream with a wildcard.
package natsio

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"

	"starwings/internal/core/domain/model/kernel"
)

const subjectPrefix = "starwings.events."

// NatsNotifier implements ports.Notifier on top of a NATS connection.
// Publishing is fire-and-forget: failures are logged, never returned as
// errors that could undo the committed transaction they follow.
type NatsNotifier struct {
	conn   *nats.Conn
	logger *slog.Logger
}

// NewNatsNotifier connects to the broker at url. The connection reconnects
// indefinitely; events published while disconnected are buffered by the
// client library.
func NewNatsNotifier(url string, logger *slog.Logger) (*NatsNotifier, error) {
	conn, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectBufSize(8*1024*1024),
	)
	if err != nil {
		return nil, err
	}
	return &NatsNotifier{conn: conn, logger: logger}, nil
}

// Publish sends one domain event. A marshaling or broker error is logged and
// swallowed; the event is lost but the committed state of the system stands.
func (n *NatsNotifier) Publish(_ context.Context, event kernel.DomainEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("marshal domain event",
			"event", event.EventName(), "error", err)
		return nil
	}

	if err := n.conn.Publish(subjectPrefix+event.EventName(), payload); err != nil {
		n.logger.Error("publish domain event",
			"event", event.EventName(), "error", err)
	}
	return nil
}

// Close flushes pending messages and drops the connection.
func (n *NatsNotifier) Close() error {
	if err := n.conn.Drain(); err != nil {
		return err
	}
	return nil
}
