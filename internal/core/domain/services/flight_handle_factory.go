package services

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
)

// ErrFactoryIsNotConstructed is returned when a FlightHandleFactory was not
// created via NewFlightHandleFactory.
var ErrFactoryIsNotConstructed = errors.New("FlightHandleFactory must be created via NewFlightHandleFactory")

// FlightAllocation is the payload a flight handle is derived from. Two
// allocations with the same payload and salt produce the same handle.
type FlightAllocation struct {
	DeliveryID     string
	ConopsID       int
	PilotPrincipal kernel.Principal
	DronePrincipal kernel.Principal
}

// Validate checks that every payload field is set.
func (a FlightAllocation) Validate() error {
	if a.DeliveryID == "" {
		return errs.NewValueIsRequiredError("delivery id")
	}
	if a.ConopsID <= 0 {
		return errs.NewValueIsInvalidError("conops id")
	}
	return errors.Join(
		a.PilotPrincipal.Validate(),
		a.DronePrincipal.Validate(),
	)
}

// FlightHandleFactory derives flight handles deterministically.
//
// A handle is a name-based UUID over the factory's namespace, a caller-chosen
// salt and the digest of the allocation payload. Anyone who knows the three
// inputs can compute the handle before the flight exists, and allocating
// twice with the same inputs yields the same handle, which the uniqueness
// check of the flight store turns into a duplicate error.
//
// Example usage:
//
//	factory, _ := services.NewFlightHandleFactory(namespace)
//	handle, err := factory.Handle("salt-001", services.FlightAllocation{
//	    DeliveryID:     deliveryID,
//	    ConopsID:       conopsID,
//	    PilotPrincipal: pilot,
//	    DronePrincipal: drone,
//	})
type FlightHandleFactory struct {
	namespace kernel.UUID
}

// NewFlightHandleFactory creates a factory scoped to one namespace. Distinct
// deployments use distinct namespaces so their handle spaces never overlap.
func NewFlightHandleFactory(namespace kernel.UUID) (FlightHandleFactory, error) {
	if err := namespace.Validate(); err != nil {
		return FlightHandleFactory{}, err
	}
	return FlightHandleFactory{namespace: namespace}, nil
}

// Validate ensures the factory was built through the constructor.
func (f FlightHandleFactory) Validate() error {
	if f.namespace.IsZero() {
		return ErrFactoryIsNotConstructed
	}
	return nil
}

// Handle computes the flight handle for a salt and an allocation payload.
func (f FlightHandleFactory) Handle(salt string, allocation FlightAllocation) (kernel.UUID, error) {
	if err := f.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if salt == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("salt")
	}
	if err := allocation.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	payload := fmt.Sprintf("%s|%d|%s|%s",
		allocation.DeliveryID,
		allocation.ConopsID,
		allocation.PilotPrincipal.String(),
		allocation.DronePrincipal.String(),
	)
	digest := sha256.Sum256([]byte(payload))

	data := make([]byte, 0, len(salt)+1+len(digest))
	data = append(data, salt...)
	data = append(data, '|')
	data = append(data, digest[:]...)

	return kernel.DeterministicUUID(f.namespace, data), nil
}
