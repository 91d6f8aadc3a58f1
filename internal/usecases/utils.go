package usecases

import (
	"fmt"
	"math"
	"strconv"
)

// maxAmountMinor caps a single checkout at one million major units.
const maxAmountMinor = 100_000_000

// amountToMinor converts a decimal major-currency amount ("40", "40.5") to
// integer minor units, rounding half away from zero. Everything downstream
// works in minor units only.
func amountToMinor(raw string) (int64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("amount is not a number: %q", raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("amount is not finite")
	}
	minor := int64(math.Round(f * 100))
	if minor <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}
	if minor > maxAmountMinor {
		return 0, fmt.Errorf("amount exceeds maximum")
	}
	return minor, nil
}

// platformFee computes the platform cut in minor units, floored.
func platformFee(amountMinor, feeBps int64) int64 {
	if feeBps <= 0 {
		return 0
	}
	return amountMinor * feeBps / 10000
}
