package nobrain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrExhausted indicates the iteration ceiling was reached without
	// satisfying the character-class policy. Retrying with the same inputs
	// reproduces the same failure.
	ErrExhausted = errors.New("iteration ceiling reached without satisfying character policy")

	// ErrUnreachablePolicy indicates the alphabet has no symbol for at least one
	// class the policy requires. It wraps ErrExhausted.
	ErrUnreachablePolicy = fmt.Errorf("%w: alphabet cannot express every required class", ErrExhausted)

	// ErrTransform indicates the transform failed or returned a digest of the wrong size.
	ErrTransform = errors.New("transform failed")

	// ErrInvalidAlphabet indicates an alphabet that is not 64 unique encodable symbols.
	ErrInvalidAlphabet = errors.New("invalid alphabet")

	// ErrInvalidConfig indicates an engine or file configuration value is out of range.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingTransform indicates no transform was configured or the name is unknown.
	ErrMissingTransform = errors.New("missing transform")

	// ErrEmptyDomain indicates a derivation request without a domain.
	ErrEmptyDomain = errors.New("domain is required")

	// ErrEmptyMaster indicates a derivation request without a master secret.
	ErrEmptyMaster = errors.New("master secret is required")
)

// DerivationError reports a derivation that could not produce a password.
// No partial password is ever attached.
type DerivationError struct {
	Err      error   // Underlying sentinel error (ErrExhausted, ErrTransform, ...)
	Attempts int     // Transform applications performed before giving up
	Missing  []Class // Classes absent from the last candidate, if known
	Cause    error   // Original error from the transform, if any
}

func (e *DerivationError) Error() string {
	var b strings.Builder
	b.WriteString("derive password: ")
	b.WriteString(e.Err.Error())
	fmt.Fprintf(&b, " after %d attempt", e.Attempts)
	if e.Attempts != 1 {
		b.WriteByte('s')
	}
	if len(e.Missing) > 0 {
		names := make([]string, len(e.Missing))
		for i, c := range e.Missing {
			names[i] = c.String()
		}
		fmt.Fprintf(&b, " (missing %s)", strings.Join(names, ", "))
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *DerivationError) Unwrap() error {
	return e.Err
}

// ConfigError represents an engine configuration error.
// It wraps a sentinel error with the offending setting.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrInvalidAlphabet, ErrInvalidConfig, ...)
	Field string // Setting that triggered the error
	Value string // Offending value, never secret material
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: %s %q", e.Err.Error(), e.Field, e.Value)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for a rejected setting.
func newConfigError(sentinel error, field, value string) error {
	return &ConfigError{
		Err:   sentinel,
		Field: field,
		Value: value,
	}
}

// newDerivationError creates a DerivationError for a failed derivation.
func newDerivationError(sentinel error, attempts int, missing []Class, cause error) error {
	return &DerivationError{
		Err:      sentinel,
		Attempts: attempts,
		Missing:  missing,
		Cause:    cause,
	}
}
