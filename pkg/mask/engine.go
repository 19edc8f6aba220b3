package mask

import (
	"errors"
	"strings"

	"github.com/goliatone/go-inputmask/internal/pattern"
)

// Engine masks and unmasks the input of a single field. The configuration and
// compiled segments never change after New; only Resolve mutates the stored
// Value and UnmaskedValue. An Engine is owned by one field and is not safe for
// concurrent Resolve calls.
type Engine struct {
	config   Config
	segments []pattern.Segment

	value         string
	unmaskedValue string
}

// New validates cfg, fills mode-dependent defaults and compiles literal
// patterns. Every failure is a *ConfigurationError. Besides an empty pattern,
// New also rejects a whitespace-only pattern and a date pattern without any
// year, month or day component, both of which could only ever mask to "".
func New(cfg Config) (*Engine, error) {
	resolved := cfg.normalize()
	if strings.TrimSpace(resolved.Pattern) == "" {
		return nil, configError("", "mask/pattern required and cannot be empty", pattern.ErrEmptyPattern)
	}

	engine := &Engine{config: resolved}
	switch resolved.Mode {
	case ModeLiteral:
		compile := pattern.Compile
		if resolved.Strict {
			compile = pattern.CompileStrict
		}
		segments, err := compile(resolved.Pattern)
		if err != nil {
			if errors.Is(err, pattern.ErrUnbalancedGroup) {
				return nil, configError("mask", "unbalanced optional group in "+quote(resolved.Pattern), err)
			}
			return nil, configError("mask", err.Error(), err)
		}
		engine.segments = segments
	case ModeDate:
		if len(parseDatePattern(resolved.DatePattern)) == 0 {
			return nil, configError("datePattern", "no year, month or day components in "+quote(resolved.DatePattern), nil)
		}
	}
	return engine, nil
}

// MustNew is New for init-time wiring; it panics on configuration errors.
func MustNew(cfg Config) *Engine {
	engine, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return engine
}

// Config returns the resolved configuration, defaults included.
func (e *Engine) Config() Config {
	return e.config
}

// Mode returns the masking mode decided at construction.
func (e *Engine) Mode() Mode {
	return e.config.Mode
}

// Segments returns a copy of the compiled literal pattern. It is empty for
// number and date masks.
func (e *Engine) Segments() []pattern.Segment {
	return append([]pattern.Segment(nil), e.segments...)
}

// Mask returns the display form of raw.
func (e *Engine) Mask(raw string) string {
	clean := Sanitize(raw, e.config.Mode)
	switch e.config.Mode {
	case ModeNumber:
		return MaskNumber(clean, e.config.Delimiter, e.config.DecimalChar)
	case ModeDate:
		return MaskDate(clean, e.config.DatePattern, e.config.Delimiter)
	default:
		return MaskLiteral(clean, e.segments, e.config.MaxLength, e.config.Guide)
	}
}

// Unmask returns the canonical, separator-free form of raw.
func (e *Engine) Unmask(raw string) string {
	return Sanitize(raw, e.config.Mode)
}

// Resolve computes and stores both forms of raw, returning the engine so the
// results can be read in the same expression.
func (e *Engine) Resolve(raw string) *Engine {
	e.value = e.Mask(raw)
	e.unmaskedValue = e.Unmask(raw)
	return e
}

// MaskValue masks a non-string input such as a number. nil masks to "".
func (e *Engine) MaskValue(v any) string {
	return e.Mask(stringify(v))
}

// UnmaskValue unmasks a non-string input such as a number.
func (e *Engine) UnmaskValue(v any) string {
	return e.Unmask(stringify(v))
}

// Value is the masked string computed by the last Resolve.
func (e *Engine) Value() string {
	return e.value
}

// UnmaskedValue is the canonical string computed by the last Resolve.
func (e *Engine) UnmaskedValue() string {
	return e.unmaskedValue
}

// Placeholder describes the expected input: the guide rendering of an empty
// literal mask, or the date components joined by the delimiter. Number masks
// have no placeholder.
func (e *Engine) Placeholder() string {
	switch e.config.Mode {
	case ModeNumber:
		return ""
	case ModeDate:
		return datePlaceholder(e.config.DatePattern, e.config.Delimiter)
	default:
		return MaskLiteral("", e.segments, e.config.MaxLength, true)
	}
}

func quote(s string) string {
	return `"` + s + `"`
}
