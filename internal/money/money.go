// Package money converts between the decimal amounts exchanged at the
// HTTP boundary and the integer minor units (paise) stored internally.
// All balance arithmetic happens in minor units; floats never reach
// the storage layer.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MinorPerUnit is the number of minor units in one major currency unit.
const MinorPerUnit = 100

// maxMajor bounds boundary input so the thousandths arithmetic below
// cannot overflow int64.
const maxMajor = float64(math.MaxInt64 / (MinorPerUnit * 10))

// ToMinor converts a decimal major-unit amount to minor units with
// half-up rounding on the third decimal place. Amounts must be
// strictly positive and finite.
//
// The rounding decision is made on the decimal rendering of the
// amount, not on the raw float product: 1.005 arrives as the binary
// float 1.00499..., and multiplying first would round it down.
func ToMinor(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("amount is not a finite number")
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be greater than zero")
	}
	if amount > maxMajor {
		return 0, fmt.Errorf("amount out of range")
	}

	fixed := strconv.FormatFloat(amount, 'f', 3, 64)
	dot := strings.IndexByte(fixed, '.')
	whole, err := strconv.ParseInt(fixed[:dot], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %w", err)
	}
	frac, err := strconv.ParseInt(fixed[dot+1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %w", err)
	}

	thousandths := whole*1000 + frac
	return (thousandths + 5) / 10, nil
}

// FromMinor converts minor units back to a decimal major-unit amount
// for display.
func FromMinor(minor int64) float64 {
	return float64(minor) / MinorPerUnit
}
