package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> InProgress ──> Completed
//
// An order is created Pending with no courier. A courier claiming the
// order moves it to InProgress; delivering it moves it to Completed,
// which is terminal. There is no transition back: a claimed order stays
// claimed, and a completed order never changes again.
//
// Invalid transitions are conflicts, not validation failures: the order
// exists and the request is well-formed, the state just no longer allows
// the operation. Callers report them to the actor without mutating state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is created at checkout.
	// Orders in this status have no courier and are waiting to be claimed.
	Pending

	// InProgress indicates a courier has claimed the order and is
	// delivering it. Orders in this status always have a courier.
	InProgress

	// Completed indicates the order has been delivered.
	// This is a final state with no further transitions allowed.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, InProgress and Completed; Unknown (0) and
// any other values are invalid. Used to reject status values coming from
// external sources such as the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment.
//
// Business rules:
//   - Pending orders must not have a courier assigned
//   - InProgress orders must have a courier assigned
//   - Completed orders must have a courier assigned
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != InProgress && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == InProgress || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Take transitions the status to InProgress.
//
// The only valid starting point is Pending; claiming an order that is
// already InProgress or Completed yields a conflict.
//
// Returns:
//   - (InProgress, nil) on valid transition
//   - (0, ConflictError) if the transition is not allowed from the current status
func (s Status) Take() (Status, error) {
	if s != Pending {
		return 0, errs.NewConflictErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to take", s.String()),
		)
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// The only valid starting point is InProgress; completing a Pending or
// already Completed order yields a conflict.
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, ConflictError) if the transition is not allowed from the current status
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewConflictErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
