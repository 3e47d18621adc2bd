package entity

import "strconv"

// parseDecimal parses a decimal string; malformed input yields 0.
func parseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// decimalLess compares two decimal strings numerically.
func decimalLess(a, b string) bool {
	return parseDecimal(a) < parseDecimal(b)
}
