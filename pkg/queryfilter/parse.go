package queryfilter

import (
	"strconv"
	"strings"
)

// IsNumeric reports whether s parses as an unsigned decimal integer.
// Signs, whitespace, and fractional parts all disqualify the input.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}

	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

// ParseBool parses a query-string boolean. It accepts "1", "t" and "true" as
// true and "0", "f" and "false" as false, case-insensitively and after
// trimming whitespace. The second return value reports whether the input was
// unambiguous; callers must treat ok=false as "unknown" rather than false.
func ParseBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true":
		return true, true
	case "0", "f", "false":
		return false, true
	default:
		return false, false
	}
}
