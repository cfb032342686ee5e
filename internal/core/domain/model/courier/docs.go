// Package courier contains the Courier aggregate.
//
// A courier carries at most one order at a time. The availability flag
// tracks that: taking an order flips the courier to Busy, completing the
// order flips it back to Available. MarkAvailable is idempotent so the
// reconciliation job can repair a stale flag without special cases.
package courier
