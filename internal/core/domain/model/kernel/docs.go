// Package kernel provides the shared value objects and building blocks used by
// every aggregate in the Starwings domain model.
//
// The package includes:
//   - Principal: the opaque, comparable identity of a caller, used for every
//     role check and ownership lookup
//   - UUID: identifier value object wrapping github.com/google/uuid, with a
//     deterministic derivation used for pre-computed flight handles
//   - DomainEvent and EventRecorder: the notification mechanism; aggregates
//     record events during a mutation and the application layer publishes them
//     only after the surrounding transaction commits
//
// Everything here is immutable after construction and safe for concurrent use.
package kernel
