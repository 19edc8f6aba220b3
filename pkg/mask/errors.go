package mask

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("mask: invalid configuration")

// ConfigurationError reports a Config that cannot produce an Engine. It is a
// programming-time failure; Mask, Unmask and Resolve never return errors.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return fmt.Sprintf("mask: %s", e.Reason)
	}
	return fmt.Sprintf("mask: %s: %s", e.Field, e.Reason)
}

// Unwrap exposes the underlying cause, if any.
func (e *ConfigurationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is(err, ErrConfiguration) match any ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configError(field, reason string, cause error) error {
	return &ConfigurationError{Field: field, Reason: reason, Err: cause}
}
