// Package conops provides the CONOPS catalog domain model: per-route
// regulatory dossiers ("Concept of Operations") with their ground/air risk
// classifications and embedded air-risk lists.
//
// A dossier's core fields are immutable after creation; only the activation
// flag changes, through idempotent Enable/Disable operations. The embedded air
// risks are stored unvalidated — validation is a per-flight activity performed
// on each flight's own copy of the list.
package conops
