package kernel

// DomainEvent is a notification recorded by an aggregate during a mutation.
// Events are buffered on the aggregate and published by the application layer
// only after the surrounding transaction commits, so a failed operation emits
// nothing.
type DomainEvent interface {
	// EventName returns the stable name of the event, e.g. "DeliveryCreated".
	// It doubles as the messaging subject suffix.
	EventName() string
}

// EventRecorder buffers domain events for an aggregate. Embed it in an
// aggregate root; mutations call Record, the unit of work drains the buffer
// after commit.
//
// The zero value is ready to use.
type EventRecorder struct {
	events []DomainEvent
}

// Record appends an event to the buffer.
func (r *EventRecorder) Record(event DomainEvent) {
	r.events = append(r.events, event)
}

// Events returns the buffered events without clearing them.
func (r *EventRecorder) Events() []DomainEvent {
	return r.events
}

// DrainEvents returns the buffered events and clears the buffer.
func (r *EventRecorder) DrainEvents() []DomainEvent {
	drained := r.events
	r.events = nil
	return drained
}
