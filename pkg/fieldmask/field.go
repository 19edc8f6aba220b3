// Package fieldmask picks a mask for a form field from explicit hints or from
// registered matchers keyed on the field's type and format, and builds the
// per-field engines a form needs.
package fieldmask

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-inputmask/pkg/mask"
)

// Field types understood by the built-in matchers.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
)

// Hint keys read from Field.Hints.
const (
	HintMask        = "mask"
	HintDelimiter   = "mask.delimiter"
	HintDecimalChar = "mask.decimalChar"
	HintDatePattern = "mask.datePattern"
	HintMaxLength   = "mask.maxLength"
	HintGuide       = "mask.guide"
)

// Field describes a form input for mask resolution.
type Field struct {
	Name      string            `json:"name"`
	Type      string            `json:"type,omitempty"`
	Format    string            `json:"format,omitempty"`
	MaxLength int               `json:"maxLength,omitempty"`
	Hints     map[string]string `json:"hints,omitempty"`
}

// FieldSet holds one engine per masked field of a form.
type FieldSet struct {
	engines map[string]*mask.Engine
}

// NewFieldSet wraps prebuilt engines keyed by field name.
func NewFieldSet(engines map[string]*mask.Engine) FieldSet {
	copied := make(map[string]*mask.Engine, len(engines))
	for name, engine := range engines {
		if engine != nil {
			copied[name] = engine
		}
	}
	return FieldSet{engines: copied}
}

// Engine returns the engine bound to the named field.
func (s FieldSet) Engine(name string) (*mask.Engine, bool) {
	engine, ok := s.engines[name]
	return engine, ok
}

// Names lists masked field names in sorted order.
func (s FieldSet) Names() []string {
	names := make([]string, 0, len(s.engines))
	for name := range s.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of masked fields.
func (s FieldSet) Len() int {
	return len(s.engines)
}

func hint(field Field, key string) string {
	if field.Hints == nil {
		return ""
	}
	return strings.TrimSpace(field.Hints[key])
}

// applyHints layers the optional mask.* hints over cfg.
func applyHints(cfg mask.Config, field Field) mask.Config {
	if value := hint(field, HintDelimiter); value != "" {
		cfg.Delimiter = value
	}
	if value := hint(field, HintDecimalChar); value != "" {
		cfg.DecimalChar = value
	}
	if value := hint(field, HintDatePattern); value != "" {
		cfg.DatePattern = value
	}
	if value := hint(field, HintMaxLength); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			cfg.MaxLength = n
		}
	}
	if value := hint(field, HintGuide); value != "" {
		if guide, err := strconv.ParseBool(value); err == nil {
			cfg.Guide = guide
		}
	}
	if cfg.MaxLength == 0 && field.MaxLength > 0 && mask.ParseMode(cfg.Pattern) == mask.ModeLiteral && cfg.Mode == mask.ModeLiteral {
		cfg.MaxLength = field.MaxLength
	}
	return cfg
}
