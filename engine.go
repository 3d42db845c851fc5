package nobrain

import (
	"context"
	"fmt"
	"time"
)

// DefaultMaxIterations is the reference iteration ceiling.
const DefaultMaxIterations = 100

// Result is a successful derivation.
type Result struct {
	Password   string // Encoded digest that satisfied the policy
	Iterations int    // Transform applications performed, always >= 1
}

// Request is the input to DerivePassword.
type Request struct {
	Domain    string // Required
	Username  string // Optional; empty means omitted
	Master    []byte // Required
	Secondary []byte // Optional; nil or empty means omitted
}

// Engine turns composed input into a password that satisfies a character-class
// policy, re-deriving from its own previous output until it does.
//
// An Engine holds no secrets and no mutable state, so it is safe for
// concurrent use.
type Engine struct {
	transform     Transform
	name          string
	alphabet      *Alphabet
	policy        Policy
	maxIterations int
	reachable     bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithTransform sets the transform and the name reported in signals.
func WithTransform(name string, t Transform) Option {
	return func(e *Engine) {
		e.name = name
		e.transform = t
	}
}

// WithAlphabet sets the encoding alphabet.
func WithAlphabet(a *Alphabet) Option {
	return func(e *Engine) {
		e.alphabet = a
	}
}

// WithPolicy sets the character-class policy.
func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithMaxIterations sets the iteration ceiling.
func WithMaxIterations(n int) Option {
	return func(e *Engine) {
		e.maxIterations = n
	}
}

// New creates an Engine. Without options it uses the reference configuration:
// PBKDF2-HMAC-SHA256 (32 rounds, 32 bytes), DefaultAlphabet, DefaultSymbols
// and a ceiling of DefaultMaxIterations.
//
// An alphabet that cannot express every policy class is accepted; derivations
// with it fail at the first attempt with ErrUnreachablePolicy.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		transform:     PBKDF2(),
		name:          string(TransformPBKDF2),
		alphabet:      MustAlphabet(DefaultAlphabet),
		policy:        NewPolicy(DefaultSymbols),
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.transform == nil {
		return nil, newConfigError(ErrMissingTransform, "transform", e.name)
	}
	if e.transform.Size() < 1 {
		return nil, newConfigError(ErrInvalidConfig, "digest size", fmt.Sprint(e.transform.Size()))
	}
	if e.alphabet == nil {
		return nil, newConfigError(ErrInvalidAlphabet, "alphabet", "")
	}
	if e.policy.symbols == "" {
		e.policy = NewPolicy("")
	}
	if e.maxIterations < 1 {
		return nil, newConfigError(ErrInvalidConfig, "max iterations", fmt.Sprint(e.maxIterations))
	}
	e.reachable = e.policy.Reachable(e.alphabet)

	emitEngineCreated(context.Background(), e.name, e.transform.Size(), e.maxIterations)
	return e, nil
}

// Keyed reports whether the engine's transform takes the master secret as key.
func (e *Engine) Keyed() bool {
	return e.transform.Keyed()
}

// Alphabet returns the encoding alphabet.
func (e *Engine) Alphabet() *Alphabet {
	return e.alphabet
}

// Policy returns the character-class policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// MaxIterations returns the iteration ceiling.
func (e *Engine) MaxIterations() int {
	return e.maxIterations
}

// DerivePassword composes req and derives its password.
// The composed input is wiped before returning; req's secrets are left to the caller.
func (e *Engine) DerivePassword(ctx context.Context, req Request) (Result, error) {
	if req.Domain == "" {
		return Result{}, ErrEmptyDomain
	}
	if len(req.Master) == 0 {
		return Result{}, ErrEmptyMaster
	}

	keyed := e.transform.Keyed()
	input := Compose(req.Master, req.Secondary, req.Username, req.Domain, keyed)
	defer Wipe(input)

	var key []byte
	if keyed {
		key = req.Master
	}
	return e.Derive(ctx, input, key)
}

// Derive applies the transform to input, encodes the digest and checks it
// against the policy. Until the policy holds, the previous encoding becomes
// the next input. At most MaxIterations transforms are applied.
//
// input and key are only read. Intermediate candidates and digests are
// wiped as soon as they are replaced.
func (e *Engine) Derive(ctx context.Context, input, key []byte) (Result, error) {
	start := time.Now()
	emitDeriveStart(ctx, e.name)

	var attempts int
	var retErr error
	defer func() {
		emitDeriveComplete(ctx, e.name, attempts, time.Since(start), retErr)
	}()

	size := e.transform.Size()
	encoded := make([]byte, e.alphabet.EncodedLen(size))
	next := make([]byte, len(encoded))
	defer Wipe(encoded)
	defer Wipe(next)

	candidate := input
	for {
		attempts++

		digest, err := e.transform.Apply(candidate, key)
		if err != nil {
			retErr = newDerivationError(ErrTransform, attempts, nil, err)
			return Result{}, retErr
		}
		if len(digest) != size {
			Wipe(digest)
			retErr = newDerivationError(ErrTransform, attempts, nil,
				fmt.Errorf("digest is %d bytes, want %d", len(digest), size))
			return Result{}, retErr
		}
		e.alphabet.enc.Encode(encoded, digest)
		Wipe(digest)

		if satisfied(e.policy, encoded) {
			return Result{Password: string(encoded), Iterations: attempts}, nil
		}
		if !e.reachable {
			retErr = newDerivationError(ErrUnreachablePolicy, attempts, missing(e.policy, encoded), nil)
			return Result{}, retErr
		}
		if attempts >= e.maxIterations {
			retErr = newDerivationError(ErrExhausted, attempts, missing(e.policy, encoded), nil)
			return Result{}, retErr
		}

		copy(next, encoded)
		candidate = next
	}
}
