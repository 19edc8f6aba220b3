package mask

import (
	"strings"

	"github.com/goliatone/go-inputmask/internal/pattern"
)

// PlaceholderChar fills unfilled slots in guide mode.
const PlaceholderChar = '_'

// MaskLiteral walks segments against sanitized input. Slots consume matching
// characters, optional segments are absorbed only when the user typed their
// literal, and required literals are emitted as decoration. Without guide the
// output stops as soon as the input runs out; with guide the remaining slots
// render as placeholders. maxLength <= 0 means unbounded.
func MaskLiteral(input string, segments []pattern.Segment, maxLength int, guide bool) string {
	chars := []rune(input)
	var (
		composed strings.Builder
		cursor   int
	)
	for _, segment := range segments {
		if maxLength > 0 && cursor >= maxLength {
			break
		}
		slot := segment.Slot()

		if cursor >= len(chars) {
			if !guide {
				break
			}
			if slot != pattern.SlotNone {
				composed.WriteRune(PlaceholderChar)
				cursor++
				continue
			}
			if !segment.Optional {
				composed.WriteString(segment.Literal)
			}
			continue
		}

		char := chars[cursor]
		if (slot == pattern.SlotDigit && isDigit(char)) ||
			(slot == pattern.SlotAlpha && isAlpha(char)) ||
			slot == pattern.SlotAny {
			composed.WriteRune(char)
			cursor++
			continue
		}

		if segment.Optional {
			if segment.Normalized() == string(char) {
				composed.WriteString(segment.Literal)
				cursor++
			}
			continue
		}

		composed.WriteString(segment.Literal)
	}
	return composed.String()
}
