package nobrain

import (
	"errors"
	"testing"
)

func TestConfigError_Is(t *testing.T) {
	err := newConfigError(ErrInvalidAlphabet, "duplicate symbol", "A")

	if !errors.Is(err, ErrInvalidAlphabet) {
		t.Error("ConfigError should unwrap to ErrInvalidAlphabet")
	}

	if errors.Is(err, ErrInvalidConfig) {
		t.Error("ConfigError should not match ErrInvalidConfig")
	}
}

func TestConfigError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "field and value",
			err:  newConfigError(ErrInvalidConfig, "max_iterations", "0"),
			want: `invalid configuration: max_iterations "0"`,
		},
		{
			name: "field only",
			err:  &ConfigError{Err: ErrInvalidAlphabet, Field: "alphabet"},
			want: `invalid alphabet: alphabet`,
		},
		{
			name: "sentinel only",
			err:  &ConfigError{Err: ErrMissingTransform},
			want: `missing transform`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDerivationError_Is(t *testing.T) {
	err := newDerivationError(ErrUnreachablePolicy, 1, []Class{ClassSymbol}, nil)

	if !errors.Is(err, ErrUnreachablePolicy) {
		t.Error("DerivationError should unwrap to ErrUnreachablePolicy")
	}
	if !errors.Is(err, ErrExhausted) {
		t.Error("ErrUnreachablePolicy should unwrap to ErrExhausted")
	}
	if errors.Is(err, ErrTransform) {
		t.Error("DerivationError should not match ErrTransform")
	}
}

func TestDerivationError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "exhausted",
			err:  newDerivationError(ErrExhausted, 100, []Class{ClassLower, ClassSymbol}, nil),
			want: "derive password: iteration ceiling reached without satisfying character policy after 100 attempts (missing lowercase, symbol)",
		},
		{
			name: "single attempt",
			err:  newDerivationError(ErrTransform, 1, nil, errors.New("boom")),
			want: "derive password: transform failed after 1 attempt: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrExhausted,
		ErrTransform,
		ErrInvalidAlphabet,
		ErrInvalidConfig,
		ErrMissingTransform,
		ErrEmptyDomain,
		ErrEmptyMaster,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}
