package flight

import (
	"time"

	"starwings/internal/pkg/errs"
)

// Risk categorizes an in-flight incident reported by the drone.
type Risk int

const (
	RiskEngine Risk = iota
	RiskGtc
	RiskTelecom
)

var riskNames = map[Risk]string{
	RiskEngine:  "Engine",
	RiskGtc:     "Gtc",
	RiskTelecom: "Telecom",
}

// Validate checks that the risk category is known.
func (r Risk) Validate() error {
	if r < RiskEngine || r > RiskTelecom {
		return errs.NewValueIsOutOfRangeError("risk", int(r), int(RiskEngine), int(RiskTelecom))
	}
	return nil
}

func (r Risk) String() string {
	if name, ok := riskNames[r]; ok {
		return name
	}
	return "Unknown"
}

// RiskEvent is one incident reported during a flight. The log is append-only.
type RiskEvent struct {
	At   time.Time
	Risk Risk
}

// Checkpoint is one position report from the drone. The track is append-only.
type Checkpoint struct {
	At        time.Time
	Latitude  float64
	Longitude float64
}
