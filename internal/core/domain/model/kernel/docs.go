// Package kernel holds the identifier type shared by every aggregate of the
// production ledger. UUID wraps google/uuid so aggregates never depend on the
// library directly and a zero identifier can be rejected at construction.
package kernel
