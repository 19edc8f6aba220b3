package mask

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// PatternFromValue converts a decoded configuration value into a pattern
// string. Strings pass through and number-like values are formatted in their
// shortest decimal form; anything else is a *ConfigurationError.
func PatternFromValue(v any) (string, error) {
	switch typed := v.(type) {
	case nil:
		return "", configError("", "mask/pattern required and cannot be empty", nil)
	case string, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return stringify(typed), nil
	default:
		return "", configError("mask", fmt.Sprintf("unsupported pattern type %T", v), nil)
	}
}

func stringify(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case json.Number:
		return typed.String()
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case uint64:
		return strconv.FormatUint(typed, 10)
	case fmt.Stringer:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}
