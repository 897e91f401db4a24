package money

import (
	"fmt"
	"math"
)

// Amount is a sum of money in paisa (1/100 taka). All ledger arithmetic
// stays in integer paisa; conversion to taka happens only at the API
// boundary.
type Amount int64

// Tolerance is the maximum discrepancy accepted when comparing amounts
// supplied by a client against computed ones (0.01 taka).
const Tolerance Amount = 1

// FromTaka converts a taka value to paisa, rounding half away from zero.
func FromTaka(v float64) Amount {
	if v < 0 {
		return -Amount(math.Floor(-v*100 + 0.5))
	}
	return Amount(math.Floor(v*100 + 0.5))
}

// Taka returns the amount as a taka value for display and JSON payloads.
func (a Amount) Taka() float64 {
	return float64(a) / 100
}

// MulRate multiplies the amount by a fractional rate, rounding half away
// from zero to whole paisa.
func (a Amount) MulRate(rate float64) Amount {
	return FromTaka(float64(a) * rate / 100)
}

func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

// Within reports whether a and b differ by at most Tolerance.
func Within(a, b Amount) bool {
	return (a - b).Abs() <= Tolerance
}

// Clamp bounds the amount to [min, max]. A zero max means no upper bound.
func (a Amount) Clamp(min, max Amount) Amount {
	if a < min {
		return min
	}
	if max > 0 && a > max {
		return max
	}
	return a
}

func (a Amount) String() string {
	return fmt.Sprintf("%.2f", a.Taka())
}
