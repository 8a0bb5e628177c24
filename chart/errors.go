package chart

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration failure.
var ErrInvalidConfig = errors.New("invalid chart configuration")

// ConfigError reports a rejected style or canvas parameter.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("chart: %s = %v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func newConfigError(field string, value any, reason string) *ConfigError {
	return &ConfigError{
		Field: field,
		Value: value,
		Err:   fmt.Errorf("%w: %s", ErrInvalidConfig, reason),
	}
}
