package mask

import (
	"strings"
)

// MaskNumber groups the whole part of sanitized input every three digits from
// the least significant one. Only the text between the first and second "."
// is kept as the fraction; it is appended verbatim after decimalChar when
// non-empty.
func MaskNumber(input, delimiter, decimalChar string) string {
	if input == "" {
		return ""
	}
	parts := strings.Split(input, ".")
	whole := []rune(parts[0])
	if len(whole) == 0 {
		return ""
	}

	var composed strings.Builder
	composed.Grow(len(input) + len(whole)/3*len(delimiter) + len(decimalChar))
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			composed.WriteString(delimiter)
		}
		composed.WriteRune(digit)
	}
	if len(parts) > 1 && parts[1] != "" {
		composed.WriteString(decimalChar)
		composed.WriteString(parts[1])
	}
	return composed.String()
}
