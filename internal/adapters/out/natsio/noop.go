package natsio

import (
	"context"

	"starwings/internal/core/domain/model/kernel"
)

// NoopNotifier discards every event. Used when no broker is configured.
type NoopNotifier struct{}

func (NoopNotifier) Publish(_ context.Context, _ kernel.DomainEvent) error { return nil }

func (NoopNotifier) Close() error { return nil }
