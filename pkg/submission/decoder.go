// Package submission applies a form's field masks to submitted values,
// yielding both the display form to re-render and the canonical form to store.
package submission

import (
	"html"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-inputmask/pkg/fieldmask"
)

// Result holds the masked display values and unmasked canonical values of a
// submission, keyed by field name.
type Result struct {
	Display map[string]string
	Values  map[string]string
}

// Decoder maps submitted values through the engines of a FieldSet. Values of
// fields outside the set are trimmed and passed through unchanged.
type Decoder struct {
	fields fieldmask.FieldSet
	policy *bluemonday.Policy
}

// NewDecoder binds a decoder to the masked fields of a form.
func NewDecoder(fields fieldmask.FieldSet) *Decoder {
	return &Decoder{
		fields: fields,
		policy: bluemonday.StrictPolicy(),
	}
}

// Decode processes url-encoded form values. Only the first value of each key
// is used.
func (d *Decoder) Decode(values url.Values) Result {
	flat := make(map[string]string, len(values))
	for key, entries := range values {
		if len(entries) == 0 {
			continue
		}
		flat[key] = entries[0]
	}
	return d.DecodeMap(flat)
}

// DecodeMap processes a flat map of submitted values.
func (d *Decoder) DecodeMap(values map[string]string) Result {
	result := Result{
		Display: make(map[string]string, len(values)),
		Values:  make(map[string]string, len(values)),
	}
	for name, raw := range values {
		clean := d.clean(raw)
		engine, ok := d.fields.Engine(name)
		if !ok {
			result.Display[name] = clean
			result.Values[name] = clean
			continue
		}
		result.Display[name] = engine.Mask(clean)
		result.Values[name] = engine.Unmask(clean)
	}
	return result
}

// clean strips markup pasted into an input and decodes entities so that only
// the visible text reaches the masks.
func (d *Decoder) clean(raw string) string {
	if raw == "" {
		return ""
	}
	text := raw
	if strings.ContainsAny(text, "<&") {
		text = html.UnescapeString(d.policy.Sanitize(text))
	}
	return strings.TrimSpace(text)
}
