package flight

import "starwings/internal/pkg/errs"

// Status is one step of a flight's lifecycle. The pilot and the drone each
// track their own Status independently; outside the cancellation paths a
// tracker only ever moves to a strictly greater value.
type Status int

const (
	StatusPreFlight Status = iota
	StatusCanceled
	StatusFlying
	StatusPaused
	StatusAborted
	StatusEnded
)

var statusNames = map[Status]string{
	StatusPreFlight: "PreFlight",
	StatusCanceled:  "Canceled",
	StatusFlying:    "Flying",
	StatusPaused:    "Paused",
	StatusAborted:   "Aborted",
	StatusEnded:     "Ended",
}

// Validate checks that the status is inside the known lifecycle.
func (s Status) Validate() error {
	if s < StatusPreFlight || s > StatusEnded {
		return errs.NewValueIsOutOfRangeError("flight status", int(s), int(StatusPreFlight), int(StatusEnded))
	}
	return nil
}

// IsTerminal reports whether no further transition is possible from s.
func (s Status) IsTerminal() bool {
	return s == StatusCanceled || s == StatusAborted || s == StatusEnded
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}
