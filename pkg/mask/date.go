package mask

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-inputmask/internal/pattern"
)

type dateComponent int

const (
	componentYear dateComponent = iota
	componentMonth
	componentDay
)

type componentSpec struct {
	width int
	max   int
}

var componentSpecs = map[dateComponent]componentSpec{
	componentYear:  {width: 4, max: 9999},
	componentMonth: {width: 2, max: 12},
	componentDay:   {width: 2, max: 31},
}

type dateToken struct {
	component dateComponent
	source    string
}

// parseDatePattern splits a date pattern on separators and classifies each
// run by the first of y, m or d it contains. Runs with none are ignored.
func parseDatePattern(datePattern string) []dateToken {
	runs := strings.FieldsFunc(datePattern, pattern.IsSeparator)
	tokens := make([]dateToken, 0, len(runs))
	for _, run := range runs {
		lower := strings.ToLower(run)
		switch {
		case strings.Contains(lower, "y"):
			tokens = append(tokens, dateToken{component: componentYear, source: lower})
		case strings.Contains(lower, "m"):
			tokens = append(tokens, dateToken{component: componentMonth, source: lower})
		case strings.Contains(lower, "d"):
			tokens = append(tokens, dateToken{component: componentDay, source: lower})
		}
	}
	return tokens
}

// MaskDate consumes fixed-width slices of sanitized input per date component
// (year 4, month 2, day 2) in the order the pattern declares them. Once any
// input has been consumed every later component is preceded by the delimiter,
// even when its slice is empty. A fully typed slice of zero becomes 1 and a
// slice over its maximum becomes the maximum; partial slices are kept as typed. When year, month and day have all
// been captured the result is re-rendered from the normalised calendar date,
// so a day past the end of the month rolls into the next one.
func MaskDate(input, datePattern, delimiter string) string {
	tokens := parseDatePattern(datePattern)
	chars := []rune(input)

	var (
		composed strings.Builder
		cursor   int
		captured = map[dateComponent]int{}
	)
	for _, token := range tokens {
		if cursor != 0 {
			composed.WriteString(delimiter)
		}
		spec := componentSpecs[token.component]
		end := cursor + spec.width
		if end > len(chars) {
			end = len(chars)
		}
		partial := string(chars[cursor:end])
		if end-cursor == spec.width {
			if value, ok := leadingInt(partial); ok {
				switch {
				case value == 0:
					value = 1
					partial = padZeros(value, spec.width)
				case value > spec.max:
					value = spec.max
					partial = strconv.Itoa(value)
				}
				captured[token.component] = value
			}
		}
		composed.WriteString(partial)
		cursor = end
	}

	year, month, day := captured[componentYear], captured[componentMonth], captured[componentDay]
	if year == 0 || month == 0 || day == 0 {
		return composed.String()
	}

	normalized := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		switch token.component {
		case componentYear:
			parts = append(parts, padZeros(normalized.Year(), 4))
		case componentMonth:
			parts = append(parts, padZeros(int(normalized.Month()), 2))
		case componentDay:
			parts = append(parts, padZeros(normalized.Day(), 2))
		}
	}
	return strings.Join(parts, delimiter)
}

// datePlaceholder renders the pattern's components joined by delimiter, e.g.
// "mm/dd/yyyy".
func datePlaceholder(datePattern, delimiter string) string {
	tokens := parseDatePattern(datePattern)
	parts := make([]string, len(tokens))
	for i, token := range tokens {
		parts[i] = token.source
	}
	return strings.Join(parts, delimiter)
}

// leadingInt parses the leading run of digits in s.
func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && isDigit(rune(s[end])) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	value, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return value, true
}

func padZeros(value, width int) string {
	return fmt.Sprintf("%0*d", width, value)
}
