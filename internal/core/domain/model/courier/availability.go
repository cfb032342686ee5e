package courier

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Availability represents whether a courier can claim a new order.
// A courier holds at most one order in progress at a time; claiming an
// order flips them to Busy and completing it flips them back to Available.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined value.
	AvailabilityUnknown Availability = iota

	// Available means the courier has no order in progress and may claim one.
	Available

	// Busy means the courier is delivering an order and may not claim another.
	Busy
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "Unknown",
		Available:           "Available",
		Busy:                "Busy",
	}
}

// Validate checks if the Availability value is valid.
// Valid values are Available and Busy.
func (a Availability) Validate() error {
	if a != Available && a != Busy {
		return errs.NewValueIsInvalidErrorWithCause("availability is invalid",
			fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

// String returns the human-readable name of the availability value.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "Unknown"
}
