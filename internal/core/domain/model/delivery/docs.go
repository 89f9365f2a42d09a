// Package delivery provides the parcel-delivery registry domain model.
//
// A delivery is a flat record keyed by a system-generated, never-recycled id
// derived deterministically from its submission order and supplier reference.
// Its status field is a linear enum whose transitions are intentionally
// unchecked — operators may overwrite the status freely to correct
// mis-reported states; only the enum range is enforced.
package delivery
