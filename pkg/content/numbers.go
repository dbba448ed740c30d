package content

import (
	"math/rand/v2"
	"strconv"
)

// randomNumber samples a uniform value in [min, max] and formats it with a
// fixed number of decimals. The interpolation never computes max-min, which
// overflows for bounds near the float64 limits.
func randomNumber(rng *rand.Rand, min, max float64, decimals int) string {
	u := float64From(rng)
	value := min*(1-u) + max*u
	if value < min {
		value = min
	} else if value > max {
		value = max
	}
	return FormatNumber(value, decimals)
}

// FormatNumber renders value with exactly decimals fractional digits.
// Negative decimal counts are treated as zero and negative zero prints as 0.
func FormatNumber(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if value == 0 {
		value = 0
	}
	return strconv.FormatFloat(value, 'f', decimals, 64)
}
