package css

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber serializes a CSS number the way script engines print
// numbers: shortest round-trip representation, no exponent for ordinary
// magnitudes, and no negative zero.
func FormatNumber(x float64) string {
	if x == 0 || math.IsNaN(x) {
		return "0"
	}
	if a := math.Abs(x); a < 1e-6 || a >= 1e21 {
		s := strconv.FormatFloat(x, 'e', -1, 64)
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
