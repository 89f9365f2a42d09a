// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/pkg/guard"
)

var ErrGetAllConopsQueryIsNotConstructed = errors.New(
	"GetAllConopsQuery must be created via NewGetAllConopsQuery constructor",
)

// GetAllConopsQuery retrieves every operational-concept dossier in the
// registry, active or not. Open to any principal holding a known role.
//
// Example:
//
//	query, err := NewGetAllConopsQuery(caller)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetAllConopsQueryHandler(db)
//
//	dossiers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve dossiers: %w", err)
//	}
//
//	for _, dossier := range dossiers {
//	    fmt.Printf("CONOPS %d %q active=%t\n", dossier.ID, dossier.Name, dossier.Activated)
//	}
type GetAllConopsQuery struct {
	caller kernel.Principal
	guard  guard.ConstructorGuard
}

// NewGetAllConopsQuery creates a query to retrieve all dossiers.
func NewGetAllConopsQuery(caller kernel.Principal) (GetAllConopsQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetAllConopsQuery{}, err
	}
	return GetAllConopsQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllConopsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllConopsQueryIsNotConstructed)
}

// Caller returns the requesting principal.
func (q GetAllConopsQuery) Caller() kernel.Principal {
	return q.caller
}

// AirRiskResponse is one declared air risk of a dossier or a flight.
type AirRiskResponse struct {
	Name      string
	RiskType  string
	Validated bool
}

// ConopsResponse represents one dossier in the read model.
type ConopsResponse struct {
	ID            int
	Name          string
	StartingPoint string
	EndPoint      string
	CrossRoad     string
	ExclusionZone string
	GRC           int
	ARC           int
	Activated     bool
	AirRisks      []AirRiskResponse
}
