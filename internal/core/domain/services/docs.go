// Package services provides domain services that implement business logic
// spanning multiple aggregates.
//
// The package includes:
//   - FlightHandleFactory: deterministic derivation of flight handles from an
//     allocation payload and a caller-chosen salt
//
// Domain services stay free of persistence and transport concerns; use cases
// wire them to repositories.
package services
