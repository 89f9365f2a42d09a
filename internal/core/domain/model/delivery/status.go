package delivery

import (
	"fmt"

	"starwings/internal/pkg/errs"
)

// Status is the linear progress marker of a parcel delivery.
//
// Unlike the flight status machine, delivery status transitions are
// deliberately unchecked: SetStatus accepts any in-range value in any order,
// so operators can correct a mis-reported state. Only the range [NoInfo,
// Canceled] is enforced.
type Status int

const (
	// NoInfo is the initial status of every delivery, regardless of what the
	// caller submitted.
	NoInfo Status = iota
	// Registered means the delivery has been acknowledged by the supplier.
	Registered
	// AtHub means the parcel has reached its departure hub.
	AtHub
	// InDelivery means a drone is carrying the parcel.
	InDelivery
	// Arrived means the parcel has reached its destination hub.
	Arrived
	// Delivered means the recipient has the parcel.
	Delivered
	// Canceled means the delivery was abandoned.
	Canceled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		NoInfo:     "NoInfo",
		Registered: "Registered",
		AtHub:      "AtHub",
		InDelivery: "InDelivery",
		Arrived:    "Arrived",
		Delivered:  "Delivered",
		Canceled:   "Canceled",
	}
}

// Validate rejects values outside [NoInfo, Canceled].
func (s Status) Validate() error {
	if s < NoInfo || s > Canceled {
		return errs.NewValueIsOutOfRangeErrorWithCause("status", int(s), int(NoInfo), int(Canceled),
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
