package flight

import "starwings/internal/pkg/errs"

// Check identifies one item of the pre- or post-flight checklist.
type Check int

const (
	CheckEngine Check = iota
	CheckBattery
	CheckTelecom
)

var checkNames = map[Check]string{
	CheckEngine:  "Engine",
	CheckBattery: "Battery",
	CheckTelecom: "Telecom",
}

// Validate checks that the check id belongs to the checklist.
func (c Check) Validate() error {
	if c < CheckEngine || c > CheckTelecom {
		return errs.NewValueIsOutOfRangeError("check id", int(c), int(CheckEngine), int(CheckTelecom))
	}
	return nil
}

func (c Check) String() string {
	if name, ok := checkNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Checklist tracks completion of the three flight checks. Completion is
// idempotent and never unset.
type Checklist [3]bool

// Complete marks a check done. Completing a done check is a no-op.
func (l *Checklist) Complete(id Check) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l[id] = true
	return nil
}

// IsComplete reports whether one check is done.
func (l Checklist) IsComplete(id Check) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}
	return l[id], nil
}

// AllComplete reports whether every check is done.
func (l Checklist) AllComplete() bool {
	return l[CheckEngine] && l[CheckBattery] && l[CheckTelecom]
}
