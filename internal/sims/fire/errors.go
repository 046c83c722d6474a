package fire

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel wrapped by every construction-time
// configuration failure.
var ErrInvalidConfig = errors.New("fire: invalid configuration")

// ConfigError reports which configuration field was rejected and why.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("fire: invalid %s=%d: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func invalid(field string, value int, format string, args ...any) error {
	return &ConfigError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}
