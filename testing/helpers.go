// Package testing provides test utilities for nobrain.
package testing

import (
	"sync/atomic"

	"github.com/zoobzio/nobrain"
)

// ReferenceMaster is the master secret used by the pinned vectors.
const ReferenceMaster = "correct-horse-battery-staple"

// ReferencePlaceholder is the keyfile placeholder used by the pinned vectors.
const ReferencePlaceholder = "__TEST__TEST__TEST__"

// Vector is a known derivation under the reference configuration.
type Vector struct {
	Name       string
	Domain     string
	Username   string
	Master     string
	Secondary  string
	Password   string
	Iterations int
}

// ReferenceVectors returns derivations pinned for PBKDF2-HMAC-SHA256
// (32 rounds, 32 bytes), DefaultAlphabet, DefaultSymbols and a ceiling of 100.
func ReferenceVectors() []Vector {
	return []Vector{
		{
			Name:       "domain only",
			Domain:     "example.com",
			Master:     ReferenceMaster,
			Password:   "pCgK5h2y1+4SxGAnokiMwHa8:oHCDKc:H+Vup4oG3uL",
			Iterations: 1,
		},
		{
			Name:       "with username",
			Domain:     "example.com",
			Username:   "alice",
			Master:     ReferenceMaster,
			Password:   "XZLrbR6+XqzCGD-Nf4UMwuZk7vx:SphyC!cR!PoTxNy",
			Iterations: 1,
		},
		{
			Name:       "master changed by one character",
			Domain:     "example.com",
			Master:     "correct-horse-battery-stapla",
			Password:   "GLuCKBVk6a1T3G0kTs259yiXk:6W9Yiaj13B3tTS6TA",
			Iterations: 1,
		},
		{
			Name:       "with secondary secret",
			Domain:     "example.com",
			Master:     ReferenceMaster,
			Secondary:  ReferencePlaceholder,
			Password:   "7DJw2.k7cw:$34xgNuiBs6t4+aJR9P.yNbF9kYDJDzy",
			Iterations: 1,
		},
		{
			Name:       "with secondary secret and username",
			Domain:     "example.com",
			Username:   "alice",
			Master:     ReferenceMaster,
			Secondary:  ReferencePlaceholder,
			Password:   "4kHgYVMoFA.cUenYQw8E!nr17r-GEBNGi-KctJdKvWc",
			Iterations: 1,
		},
		{
			Name:       "second iteration",
			Domain:     "site177.com",
			Master:     ReferenceMaster,
			Password:   "6A!JY+F28H4u1o0n633iH2ngc7cD.7VECY13avSU8i6",
			Iterations: 2,
		},
	}
}

// Request converts a vector into a derivation request.
func (v Vector) Request() nobrain.Request {
	req := nobrain.Request{
		Domain:   v.Domain,
		Username: v.Username,
		Master:   []byte(v.Master),
	}
	if v.Secondary != "" {
		req.Secondary = []byte(v.Secondary)
	}
	return req
}

// StuckTransform always returns an all-zero digest. With DefaultAlphabet
// every encoding is "AAA...", which never satisfies the policy.
type StuckTransform struct {
	calls atomic.Int64
}

// Apply returns 32 zero bytes.
func (t *StuckTransform) Apply(_, _ []byte) ([]byte, error) {
	t.calls.Add(1)
	return make([]byte, 32), nil
}

// Size returns 32.
func (t *StuckTransform) Size() int { return 32 }

// Keyed returns true.
func (t *StuckTransform) Keyed() bool { return true }

// Calls returns how many times Apply ran.
func (t *StuckTransform) Calls() int { return int(t.calls.Load()) }

// CountingTransform wraps a transform and records every input it sees.
type CountingTransform struct {
	nobrain.Transform
	Inputs []string
}

// Apply records a copy of input and delegates.
func (t *CountingTransform) Apply(input, key []byte) ([]byte, error) {
	t.Inputs = append(t.Inputs, string(input))
	return t.Transform.Apply(input, key)
}
