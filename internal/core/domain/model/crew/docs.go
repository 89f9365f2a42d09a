// Package crew holds the master directory's roster entries: pilots and
// drones eligible for flights.
//
// Both rosters are append-only arrays of slots. A slot's index is assigned
// at first registration and never reused for a different principal; removal
// is a soft-delete flag, and re-adding the same principal reinstates the
// original slot with its flight history intact. This keeps flight handle
// lists attributable across the whole lifetime of the system.
package crew
