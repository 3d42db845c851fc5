package nobrain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DefaultAlphabet is the reference 64-symbol alphabet. Punctuation is limited
// to six symbols, so a fair share of digests miss the symbol class and the
// engine has to iterate.
const DefaultAlphabet = "ABCDEF$!:+-.GHJKLMNPQRSTUVWXYZabcdefghijknopqrstuvwxyz0123456789"

// Alphabet maps 6-bit groups to visible symbols.
type Alphabet struct {
	symbols string
	enc     *base64.Encoding
}

// NewAlphabet validates symbols and returns an Alphabet.
// symbols must hold exactly 64 unique single-byte characters, none of which
// may be a line break or the padding character '='.
func NewAlphabet(symbols string) (*Alphabet, error) {
	if len(symbols) != 64 {
		return nil, newConfigError(ErrInvalidAlphabet, "symbol count (want 64)", fmt.Sprint(len(symbols)))
	}
	var seen [256]bool
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		switch {
		case c >= 0x80:
			return nil, newConfigError(ErrInvalidAlphabet, "non-ASCII symbol at offset", fmt.Sprint(i))
		case c == '\n' || c == '\r' || c == '=':
			return nil, newConfigError(ErrInvalidAlphabet, "reserved symbol", string(c))
		case seen[c]:
			return nil, newConfigError(ErrInvalidAlphabet, "duplicate symbol", string(c))
		}
		seen[c] = true
	}
	return &Alphabet{
		symbols: symbols,
		enc:     base64.NewEncoding(symbols).WithPadding(base64.NoPadding),
	}, nil
}

// MustAlphabet is like NewAlphabet but panics on invalid input.
// Intended for package-level constants.
func MustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Encode maps every 6 bits of digest to one symbol, most significant bits first.
// The final group is zero-filled; no padding symbols are emitted.
func (a *Alphabet) Encode(digest []byte) string {
	return a.enc.EncodeToString(digest)
}

// EncodedLen returns the number of symbols Encode produces for n bytes.
func (a *Alphabet) EncodedLen(n int) int {
	return a.enc.EncodedLen(n)
}

// Contains reports whether every character of s is an alphabet symbol.
func (a *Alphabet) Contains(s string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(a.symbols, s[i]) < 0 {
			return false
		}
	}
	return true
}

// String returns the symbols in encoding order.
func (a *Alphabet) String() string {
	return a.symbols
}
