package commands

import (
	"errors"
	"time"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/errs"
	"starwings/internal/pkg/guard"
)

var ErrAddCheckpointCommandIsNotConstructed = errors.New(
	"AddCheckpointCommand must be created via NewAddCheckpointCommand constructor",
)

// AddCheckpointCommand represents the flight's drone reporting a position.
// Reports append unconditionally to the track.
type AddCheckpointCommand struct { //nolint:recvcheck //using for validation
	caller    kernel.Principal
	handle    kernel.UUID
	at        time.Time
	latitude  float64
	longitude float64

	guard guard.ConstructorGuard
}

// NewAddCheckpointCommand creates a command to report a position.
func NewAddCheckpointCommand(caller kernel.Principal, handle kernel.UUID, at time.Time, latitude, longitude float64) (AddCheckpointCommand, error) {
	command := AddCheckpointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setHandle(handle),
		command.setReport(at, latitude, longitude),
	); err != nil {
		return AddCheckpointCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCheckpointCommand) Validate() error {
	return c.guard.Validate(ErrAddCheckpointCommandIsNotConstructed)
}

// Caller returns the reporting drone.
func (c AddCheckpointCommand) Caller() kernel.Principal {
	return c.caller
}

// FlightHandle returns the target flight.
func (c AddCheckpointCommand) FlightHandle() kernel.UUID {
	return c.handle
}

// At returns the report timestamp.
func (c AddCheckpointCommand) At() time.Time {
	return c.at
}

// Latitude returns the reported latitude.
func (c AddCheckpointCommand) Latitude() float64 {
	return c.latitude
}

// Longitude returns the reported longitude.
func (c AddCheckpointCommand) Longitude() float64 {
	return c.longitude
}

func (c *AddCheckpointCommand) setCaller(caller kernel.Principal) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *AddCheckpointCommand) setHandle(handle kernel.UUID) error {
	if err := handle.Validate(); err != nil {
		return err
	}

	c.handle = handle
	return nil
}

func (c *AddCheckpointCommand) setReport(at time.Time, latitude, longitude float64) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("report time")
	}
	if latitude < -90 || latitude > 90 {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, -90, 90)
	}
	if longitude < -180 || longitude > 180 {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, -180, 180)
	}

	c.at = at
	c.latitude = latitude
	c.longitude = longitude
	return nil
}
