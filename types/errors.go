package types

import (
	"errors"
	"fmt"
)

// ConfigError reports an invalid construction-time option. It is always
// returned before any text is processed so bad configuration never silently
// degrades output.
type ConfigError struct {
	// Field names the offending option
	Field string
	// Reason describes why the value was rejected
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewConfigError creates a ConfigError for the named field.
func NewConfigError(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// OracleError reports a failed or unparseable decision from the boundary
// oracle. Boundary is the index of the candidate window being adjudicated.
type OracleError struct {
	Boundary int
	Err      error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("oracle failed on boundary %d: %v", e.Boundary, e.Err)
}

func (e *OracleError) Unwrap() error {
	return e.Err
}

// NewOracleError wraps err as an OracleError for the given candidate boundary.
func NewOracleError(boundary int, err error) *OracleError {
	return &OracleError{Boundary: boundary, Err: err}
}

// IsOracleError reports whether err is (or wraps) an OracleError.
func IsOracleError(err error) bool {
	var oe *OracleError
	return errors.As(err, &oe)
}
