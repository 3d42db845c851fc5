package nobrain

import "strings"

// DefaultSymbols is the punctuation set the reference policy requires.
const DefaultSymbols = "$!+-.:"

// Class is one of the four disjoint character classes a password must contain.
type Class int

const (
	ClassLower  Class = iota // a-z
	ClassUpper               // A-Z
	ClassDigit               // 0-9
	ClassSymbol              // one of the policy's symbols
)

func (c Class) String() string {
	switch c {
	case ClassLower:
		return "lowercase"
	case ClassUpper:
		return "uppercase"
	case ClassDigit:
		return "digit"
	case ClassSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Policy requires at least one character from each class.
// The zero value is not usable; build one with NewPolicy.
type Policy struct {
	symbols string
}

// NewPolicy returns a policy whose symbol class is the given set.
// An empty set falls back to DefaultSymbols.
func NewPolicy(symbols string) Policy {
	if symbols == "" {
		symbols = DefaultSymbols
	}
	return Policy{symbols: symbols}
}

// Symbols returns the punctuation set of the symbol class.
func (p Policy) Symbols() string {
	return p.symbols
}

// classify reports the class of c, or false for characters in no class.
func (p Policy) classify(c byte) (Class, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return ClassLower, true
	case c >= 'A' && c <= 'Z':
		return ClassUpper, true
	case c >= '0' && c <= '9':
		return ClassDigit, true
	case strings.IndexByte(p.symbols, c) >= 0:
		return ClassSymbol, true
	}
	return 0, false
}

// presence returns a bitmask of the classes found in s.
func presence[S ~string | ~[]byte](p Policy, s S) uint8 {
	var mask uint8
	for i := 0; i < len(s) && mask != 0b1111; i++ {
		if c, ok := p.classify(s[i]); ok {
			mask |= 1 << c
		}
	}
	return mask
}

// satisfied reports whether s holds every class of p.
func satisfied[S ~string | ~[]byte](p Policy, s S) bool {
	return presence(p, s) == 0b1111
}

// missing returns the classes of p absent from s, in class order.
func missing[S ~string | ~[]byte](p Policy, s S) []Class {
	mask := presence(p, s)
	var out []Class
	for c := ClassLower; c <= ClassSymbol; c++ {
		if mask&(1<<c) == 0 {
			out = append(out, c)
		}
	}
	return out
}

// Satisfied reports whether s holds a lowercase letter, an uppercase letter,
// a digit and one of the policy symbols.
func (p Policy) Satisfied(s string) bool {
	return satisfied(p, s)
}

// Missing returns the classes absent from s, in class order.
func (p Policy) Missing(s string) []Class {
	return missing(p, s)
}

// Reachable reports whether the alphabet has at least one symbol of every class.
func (p Policy) Reachable(a *Alphabet) bool {
	return satisfied(p, a.String())
}
