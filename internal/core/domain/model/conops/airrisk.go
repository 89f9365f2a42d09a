package conops

import (
	"fmt"

	"starwings/internal/pkg/errs"
)

// RiskType classifies a named air hazard on a CONOPS route.
type RiskType int

const (
	// Aerodrome is an airfield or heliport whose traffic pattern crosses the route.
	Aerodrome RiskType = iota
	// CHU is a hospital ("Centre Hospitalier Universitaire") with protected
	// medical airspace, typically an emergency helipad.
	CHU
	// MilitaryBase is restricted military airspace.
	MilitaryBase
)

func riskTypeStrings() map[RiskType]string {
	return map[RiskType]string{
		Aerodrome:    "Aerodrome",
		CHU:          "CHU",
		MilitaryBase: "MilitaryBase",
	}
}

// Validate rejects values outside the declared enum.
func (rt RiskType) Validate() error {
	if _, ok := riskTypeStrings()[rt]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("riskType",
			fmt.Errorf("%d is not a valid risk type", rt))
	}
	return nil
}

func (rt RiskType) String() string {
	if s, ok := riskTypeStrings()[rt]; ok {
		return s
	}
	return "Unknown"
}

// AirRisk is a named hazard embedded in a CONOPS record. Each flight receives
// its own copy of the CONOPS air-risk list at initialization and validates the
// copies one by one before it may enter the Flying state; the catalog's own
// entries stay unvalidated forever.
//
// AirRisk is a value object owned by exactly one record; it is copied, never
// shared.
type AirRisk struct {
	name      string
	riskType  RiskType
	validated bool
}

// NewAirRisk creates an unvalidated air risk.
func NewAirRisk(name string, riskType RiskType) (AirRisk, error) {
	if name == "" {
		return AirRisk{}, errs.NewValueIsRequiredError("air risk name")
	}
	if err := riskType.Validate(); err != nil {
		return AirRisk{}, err
	}
	return AirRisk{name: name, riskType: riskType}, nil
}

// RestoreAirRisk reconstructs an air risk with its persisted validation state.
// Used by persistence adapters and by flights restoring their copies.
func RestoreAirRisk(name string, riskType RiskType, validated bool) (AirRisk, error) {
	risk, err := NewAirRisk(name, riskType)
	if err != nil {
		return AirRisk{}, err
	}
	risk.validated = validated
	return risk, nil
}

// Name returns the hazard's display name.
func (ar AirRisk) Name() string {
	return ar.name
}

// RiskType returns the hazard classification.
func (ar AirRisk) RiskType() RiskType {
	return ar.riskType
}

// Validated reports whether a pilot has signed this hazard off.
func (ar AirRisk) Validated() bool {
	return ar.validated
}

// WithValidation returns a copy with the validation flag set as given.
func (ar AirRisk) WithValidation(validated bool) AirRisk {
	ar.validated = validated
	return ar
}
