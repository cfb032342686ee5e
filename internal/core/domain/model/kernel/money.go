package kernel

import (
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"
)

// ErrMoneyIsNegative is returned when constructing a Money value from a
// negative amount. All monetary amounts in the system are non-negative.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")

// Money is an immutable value object representing a monetary amount in
// integer cents. Carrying cents instead of floats keeps cart subtotals and
// order totals exact; rounding happens in exactly one place, PercentHalfUp.
//
// The zero value is a valid amount of 0.00 and is safe to use directly,
// which keeps Money convenient as a struct field and a sum accumulator.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromFloat(10.00)
//	subtotal := price.MulQuantity(2)           // 20.00
//	tax := subtotal.PercentHalfUp(18)          // 3.60
//	total := subtotal.Add(tax)                 // 23.60
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money value from an integer number of cents.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromFloat creates a Money value from a decimal amount such as
// 12.34, rounding half-up to the nearest cent. Used at the edges of the
// system where prices arrive as decimals.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{cents: int64(math.Floor(amount*100 + 0.5))}, nil
}

// Cents returns the amount as integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount as a decimal number of currency units.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// PercentHalfUp returns the given percentage of the amount, rounded
// half-up to the nearest cent. This is the single rounding step in tax
// computation: tax = subtotal.PercentHalfUp(taxRate).
func (m Money) PercentHalfUp(percent float64) Money {
	raw := float64(m.cents) * percent / 100
	return Money{cents: int64(math.Floor(raw + 0.5))}
}

// IsZero reports whether the amount is exactly 0.00.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "23.60".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
