package utils

import "strconv"

// ParseOptionalInt parses an optional numeric query value. Empty or
// unparseable input counts as absent and yields nil rather than an error.
func ParseOptionalInt(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// ParseOptionalFloat parses an optional decimal query value with the same
// absent-on-failure semantics as ParseOptionalInt.
func ParseOptionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
