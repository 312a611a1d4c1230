package openlist

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyOpenList is the panic value of RemoveMin on an empty list.
	ErrEmptyOpenList = errors.New("remove_min on empty open list")

	// ErrKeyNotEmpty is the panic value of RemoveMin when the key
	// out-parameter already holds components.
	ErrKeyNotEmpty = errors.New("key out-parameter must be empty")

	// ErrInvalidConfig is matched by every configuration error.
	ErrInvalidConfig = errors.New("invalid open list configuration")
)

// ConfigError reports a configuration value that failed validation.
//
// errors.Is(err, ErrInvalidConfig) holds for every ConfigError. The
// underlying error (if any) can be accessed via errors.Unwrap.
type ConfigError struct {
	Field string
	Rule  string
	Value any
	cause error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", ErrInvalidConfig, e.cause)
	}
	return fmt.Sprintf("%s: field %s violates %q (value %v)", ErrInvalidConfig, e.Field, e.Rule, e.Value)
}

func (e *ConfigError) Unwrap() error { return e.cause }

// Is reports whether target is ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }
