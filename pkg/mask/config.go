package mask

import (
	"strings"
)

// Mode selects the masking state machine. It is decided once when the Engine
// is constructed.
type Mode int

const (
	// ModeLiteral masks input against a literal pattern.
	ModeLiteral Mode = iota
	// ModeNumber groups digits in thousands.
	ModeNumber
	// ModeDate reassembles date components.
	ModeDate
)

// Type tags accepted in place of a literal pattern.
const (
	TagNumber = "Number"
	TagDate   = "Date"
)

// Defaults applied by New when the corresponding Config field is empty.
const (
	DefaultLiteralDelimiter = "-"
	DefaultNumberDelimiter  = ","
	DefaultDateDelimiter    = "/"
	DefaultDecimalChar      = "."
	DefaultDatePattern      = "YYYY-mm-dd"
)

func (m Mode) String() string {
	switch m {
	case ModeNumber:
		return TagNumber
	case ModeDate:
		return TagDate
	default:
		return "Literal"
	}
}

// ParseMode maps a type tag onto a Mode. Anything other than "Number" or
// "Date" (in title or lower case) is a literal pattern.
func ParseMode(tag string) Mode {
	switch tag {
	case TagNumber, "number":
		return ModeNumber
	case TagDate, "date":
		return ModeDate
	default:
		return ModeLiteral
	}
}

// DefaultDelimiter returns the separator used by a mode when Config leaves it
// empty.
func DefaultDelimiter(mode Mode) string {
	switch mode {
	case ModeNumber:
		return DefaultNumberDelimiter
	case ModeDate:
		return DefaultDateDelimiter
	default:
		return DefaultLiteralDelimiter
	}
}

// Config describes a mask. Pattern carries either a literal pattern or a type
// tag ("Number", "Date"); Mode may be set instead of a tag. MaxLength bounds
// the number of sanitized characters consumed in literal mode; zero or a
// negative value means unbounded. Strict rejects patterns with unbalanced
// optional groups instead of silently dropping the unclosed tail.
type Config struct {
	Pattern     string `json:"mask" yaml:"mask"`
	Mode        Mode   `json:"-" yaml:"-"`
	Delimiter   string `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
	DecimalChar string `json:"decimalChar,omitempty" yaml:"decimalChar,omitempty"`
	DatePattern string `json:"datePattern,omitempty" yaml:"datePattern,omitempty"`
	MaxLength   int    `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Guide       bool   `json:"guide,omitempty" yaml:"guide,omitempty"`
	Strict      bool   `json:"strict,omitempty" yaml:"strict,omitempty"`
}

// normalize resolves the mode and fills defaults. It does not validate.
func (c Config) normalize() Config {
	out := c
	if out.Mode == ModeLiteral {
		out.Mode = ParseMode(out.Pattern)
	}
	if out.Mode != ModeLiteral && strings.TrimSpace(out.Pattern) == "" {
		out.Pattern = out.Mode.String()
	}
	if out.Delimiter == "" {
		out.Delimiter = DefaultDelimiter(out.Mode)
	}
	if out.DecimalChar == "" {
		out.DecimalChar = DefaultDecimalChar
	}
	if out.DatePattern == "" {
		out.DatePattern = DefaultDatePattern
	}
	if out.MaxLength < 0 {
		out.MaxLength = 0
	}
	return out
}
