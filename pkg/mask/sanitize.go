package mask

import (
	"strings"

	"github.com/goliatone/go-inputmask/internal/pattern"
)

// Sanitize strips raw input down to the alphabet relevant to mode:
//
//   - ModeLiteral removes the separator class [|()[]/\-+_.\s].
//   - ModeNumber keeps only ASCII digits and the "." used to split the
//     whole and fraction parts.
//   - ModeDate removes the separator class and every ASCII letter.
func Sanitize(raw string, mode Mode) string {
	if raw == "" {
		return ""
	}
	switch mode {
	case ModeNumber:
		return strings.Map(func(r rune) rune {
			if isDigit(r) || r == '.' {
				return r
			}
			return -1
		}, raw)
	case ModeDate:
		return strings.Map(func(r rune) rune {
			if pattern.IsSeparator(r) || isAlpha(r) {
				return -1
			}
			return r
		}, raw)
	default:
		return pattern.StripSeparators(raw)
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
