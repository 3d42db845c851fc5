package nobrain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewAlphabet_Default(t *testing.T) {
	a, err := NewAlphabet(DefaultAlphabet)
	if err != nil {
		t.Fatalf("NewAlphabet() error: %v", err)
	}
	if a.String() != DefaultAlphabet {
		t.Errorf("String() = %q, want %q", a.String(), DefaultAlphabet)
	}
}

func TestNewAlphabet_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
	}{
		{"too short", DefaultAlphabet[:63]},
		{"too long", DefaultAlphabet + "_"},
		{"duplicate", "A" + DefaultAlphabet[1:63] + "A"},
		{"newline", "\n" + DefaultAlphabet[1:]},
		{"padding", "=" + DefaultAlphabet[1:]},
		{"non-ascii", "\xc3" + DefaultAlphabet[1:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAlphabet(tt.symbols)
			if !errors.Is(err, ErrInvalidAlphabet) {
				t.Errorf("NewAlphabet() error = %v, want ErrInvalidAlphabet", err)
			}
		})
	}
}

func TestMustAlphabet_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustAlphabet() should panic on invalid symbols")
		}
	}()
	MustAlphabet("abc")
}

func TestAlphabet_Encode(t *testing.T) {
	a := MustAlphabet(DefaultAlphabet)

	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"empty", nil, ""},
		{"one byte", []byte{0xff}, "9u"},
		{"three bytes", []byte{0x00, 0x10, 0x83}, "ABCD"},
		{"text", []byte("hello world!"), "W$RqX$6cZ07wX$Ld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Encode(tt.input); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAlphabet_EncodeDigestLength(t *testing.T) {
	a := MustAlphabet(DefaultAlphabet)

	digest := make([]byte, 32)
	for i := range digest {
		digest[i] = byte(i)
	}

	got := a.Encode(digest)
	if got != "AAECAuLFBcY:CLk.DAyJDvAMEdGQFMUT$BgW$vuZ!d6" {
		t.Errorf("Encode() = %q", got)
	}
	if len(got) != 43 || a.EncodedLen(32) != 43 {
		t.Errorf("encoded length = %d (EncodedLen %d), want 43", len(got), a.EncodedLen(32))
	}
	if strings.Contains(got, "=") {
		t.Error("Encode() should not pad")
	}
}

func TestAlphabet_Contains(t *testing.T) {
	a := MustAlphabet(DefaultAlphabet)

	if !a.Contains("AB$!:+-.z9") {
		t.Error("Contains() should accept alphabet symbols")
	}
	// I, O, l and m are left out of DefaultAlphabet.
	for _, s := range []string{"I", "O", "l", "m", "/", "_"} {
		if a.Contains(s) {
			t.Errorf("Contains(%q) = true, want false", s)
		}
	}
}
