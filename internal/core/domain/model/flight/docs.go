// Package flight holds the per-delivery flight record: a two-phase created
// aggregate whose lifecycle is driven independently by the pilot and the
// drone.
//
// The pilot and drone trackers share one transition rule set. Trackers only
// move forward, Canceled is reachable only through the pilot's dedicated
// cancellation path, and Flying is gated on the embedded air risks being
// validated (plus, for the pilot, the completed preflight checklist). The
// aggregate also carries the parcel custody flags, the position track and
// the incident log.
package flight
