package delivery

// DeliveryCreated is recorded when a new delivery enters the registry.
type DeliveryCreated struct {
	DeliveryID string
}

func (DeliveryCreated) EventName() string { return "DeliveryCreated" }

// DeliveryStatusUpdated is recorded on every status overwrite, including
// no-op overwrites to the same value.
type DeliveryStatusUpdated struct {
	DeliveryID string
	OldStatus  Status
	NewStatus  Status
}

func (DeliveryStatusUpdated) EventName() string { return "DeliveryStatusUpdated" }
