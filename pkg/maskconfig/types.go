package maskconfig

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-inputmask/pkg/mask"
)

// Pattern holds the mask value of a definition exactly as written in the
// document. YAML scalars keep their source text so a pattern such as 0000 is
// not collapsed into the integer 0.
type Pattern string

// UnmarshalYAML accepts string and numeric scalars.
func (p *Pattern) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("maskconfig: mask must be a scalar, got %s", nodeKind(node.Kind))
	}
	switch node.ShortTag() {
	case "!!str", "!!int", "!!float":
		*p = Pattern(node.Value)
		return nil
	case "!!null":
		*p = ""
		return nil
	default:
		return fmt.Errorf("maskconfig: unsupported mask value %q (%s)", node.Value, node.ShortTag())
	}
}

// UnmarshalJSON accepts strings and numbers.
func (p *Pattern) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw == nil {
		*p = ""
		return nil
	}
	value, err := mask.PatternFromValue(raw)
	if err != nil {
		return err
	}
	*p = Pattern(value)
	return nil
}

// Definition is one named mask in a document.
type Definition struct {
	Mask        Pattern `json:"mask" yaml:"mask"`
	Delimiter   string  `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
	DecimalChar string  `json:"decimalChar,omitempty" yaml:"decimalChar,omitempty"`
	DatePattern string  `json:"datePattern,omitempty" yaml:"datePattern,omitempty"`
	MaxLength   int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Guide       bool    `json:"guide,omitempty" yaml:"guide,omitempty"`
	Strict      bool    `json:"strict,omitempty" yaml:"strict,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// Config converts the definition into an engine configuration.
func (d Definition) Config() mask.Config {
	return mask.Config{
		Pattern:     string(d.Mask),
		Delimiter:   d.Delimiter,
		DecimalChar: d.DecimalChar,
		DatePattern: d.DatePattern,
		MaxLength:   d.MaxLength,
		Guide:       d.Guide,
		Strict:      d.Strict,
	}
}

type documentFile struct {
	Masks map[string]Definition `json:"masks" yaml:"masks"`
}

func nodeKind(kind yaml.Kind) string {
	switch kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "scalar"
	}
}
