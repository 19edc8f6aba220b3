package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-inputmask/pkg/fieldmask"
	"github.com/goliatone/go-inputmask/pkg/mask"
)

// ExtensionKey names the schema extension carrying mask hints.
const ExtensionKey = "x-input-mask"

var preferredMediaTypes = []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"}

// FieldsFromFile reads an OpenAPI document from disk and extracts its fields.
func FieldsFromFile(ctx context.Context, path string) (map[string][]fieldmask.Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", path, err)
	}
	return Fields(ctx, data)
}

// FieldsFromFS reads an OpenAPI document from fsys and extracts its fields.
func FieldsFromFS(ctx context.Context, fsys fs.FS, name string) (map[string][]fieldmask.Field, error) {
	if fsys == nil {
		return nil, errors.New("openapi: file system is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("openapi: read %s: %w", name, err)
	}
	return Fields(ctx, data)
}

// Fields parses an OpenAPI document and returns the request body fields of
// each operation keyed by operationId ("method:path" when the id is empty).
// Nested object properties are flattened into dotted names and every
// operation's fields are sorted by name.
func Fields(ctx context.Context, data []byte) (map[string][]fieldmask.Field, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return nil, errors.New("openapi: document does not contain any paths")
	}

	result := make(map[string][]fieldmask.Field)
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			if operation == nil {
				continue
			}
			schema := requestSchema(operation.RequestBody)
			if schema == nil {
				continue
			}
			id := operation.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			var fields []fieldmask.Field
			collectFields(&fields, "", schema, map[*openapi3.Schema]bool{})
			if len(fields) == 0 {
				continue
			}
			sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })
			result[id] = fields
		}
	}
	return result, nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.SchemaRef {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range preferredMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil {
			return mt.Schema
		}
	}
	for _, mt := range content {
		if mt != nil {
			return mt.Schema
		}
	}
	return nil
}

func collectFields(dest *[]fieldmask.Field, prefix string, ref *openapi3.SchemaRef, visiting map[*openapi3.Schema]bool) {
	if ref == nil || ref.Value == nil {
		return
	}
	schema := ref.Value
	if visiting[schema] {
		return
	}

	if len(schema.Properties) > 0 {
		visiting[schema] = true
		defer delete(visiting, schema)
		for name, property := range schema.Properties {
			collectFields(dest, joinName(prefix, name), property, visiting)
		}
		return
	}
	if prefix == "" {
		return
	}

	field := fieldmask.Field{
		Name:   prefix,
		Type:   firstSchemaType(schema.Type),
		Format: schema.Format,
		Hints:  maskHints(schema.Extensions[ExtensionKey]),
	}
	if schema.MaxLength != nil {
		field.MaxLength = int(*schema.MaxLength)
	}
	*dest = append(*dest, field)
}

// maskHints converts an x-input-mask value into fieldmask hints.
func maskHints(raw any) map[string]string {
	switch typed := raw.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(typed) == "" {
			return nil
		}
		return map[string]string{fieldmask.HintMask: typed}
	case map[string]any:
		hints := make(map[string]string, len(typed))
		keys := map[string]string{
			"mask":        fieldmask.HintMask,
			"delimiter":   fieldmask.HintDelimiter,
			"decimalChar": fieldmask.HintDecimalChar,
			"datePattern": fieldmask.HintDatePattern,
			"maxLength":   fieldmask.HintMaxLength,
			"guide":       fieldmask.HintGuide,
		}
		for key, hintKey := range keys {
			value, ok := typed[key]
			if !ok {
				continue
			}
			if text := hintValue(value); text != "" {
				hints[hintKey] = text
			}
		}
		if len(hints) == 0 {
			return nil
		}
		return hints
	default:
		if text := hintValue(typed); text != "" {
			return map[string]string{fieldmask.HintMask: text}
		}
		return nil
	}
}

func hintValue(value any) string {
	switch typed := value.(type) {
	case bool:
		return strconv.FormatBool(typed)
	default:
		pattern, err := mask.PatternFromValue(typed)
		if err != nil {
			return ""
		}
		return pattern
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func joinName(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}
