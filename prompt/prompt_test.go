package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSecret(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("hunter2\n"), &out)

	buf, err := p.Secret("Master key")
	if err != nil {
		t.Fatalf("Secret() error: %v", err)
	}
	defer buf.Close()

	if got := string(buf.Bytes()); got != "hunter2" {
		t.Errorf("Secret() = %q, want hunter2", got)
	}
	if out.String() != "Master key: " {
		t.Errorf("prompt = %q, want %q", out.String(), "Master key: ")
	}
}

func TestSecret_LineEndings(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"lf", "secret\n"},
		{"crlf", "secret\r\n"},
		{"no newline", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(strings.NewReader(tt.input), &bytes.Buffer{})
			buf, err := p.Secret("Key")
			if err != nil {
				t.Fatalf("Secret() error: %v", err)
			}
			defer buf.Close()
			if got := string(buf.Bytes()); got != "secret" {
				t.Errorf("Secret() = %q, want secret", got)
			}
		})
	}
}

func TestSecret_KeepsSpaces(t *testing.T) {
	p := New(strings.NewReader("  padded  \n"), &bytes.Buffer{})
	buf, err := p.Secret("Key")
	if err != nil {
		t.Fatalf("Secret() error: %v", err)
	}
	defer buf.Close()
	if got := string(buf.Bytes()); got != "  padded  " {
		t.Errorf("Secret() = %q, want spaces kept", got)
	}
}

func TestSecret_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"eof", "", ErrCancelled},
		{"empty line", "\n", ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(strings.NewReader(tt.input), &bytes.Buffer{})
			if _, err := p.Secret("Key"); !errors.Is(err, tt.want) {
				t.Errorf("Secret() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSecretConfirmed(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("same\nsame\n"), &out)

	buf, err := p.SecretConfirmed("Master key", "Confirm master key")
	if err != nil {
		t.Fatalf("SecretConfirmed() error: %v", err)
	}
	defer buf.Close()

	if string(buf.Bytes()) != "same" {
		t.Errorf("SecretConfirmed() = %q, want same", buf.Bytes())
	}
	if want := "Master key: Confirm master key: "; out.String() != want {
		t.Errorf("prompts = %q, want %q", out.String(), want)
	}
}

func TestSecretConfirmed_Mismatch(t *testing.T) {
	p := New(strings.NewReader("one\ntwo\n"), &bytes.Buffer{})
	if _, err := p.SecretConfirmed("A", "B"); !errors.Is(err, ErrMismatch) {
		t.Errorf("SecretConfirmed() error = %v, want ErrMismatch", err)
	}
}

func TestSecretConfirmed_SecondMissing(t *testing.T) {
	p := New(strings.NewReader("one\n"), &bytes.Buffer{})
	if _, err := p.SecretConfirmed("A", "B"); !errors.Is(err, ErrCancelled) {
		t.Errorf("SecretConfirmed() error = %v, want ErrCancelled", err)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{" YES \n", true},
		{"n\n", false},
		{"\n", false},
		{"yep\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)
			got, err := p.Confirm("Create it?")
			if err != nil {
				t.Fatalf("Confirm() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if out.String() != "Create it? [y/N]: " {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})
	if _, err := p.Confirm("Create it?"); !errors.Is(err, ErrCancelled) {
		t.Errorf("Confirm() error = %v, want ErrCancelled", err)
	}
}

func TestSharedReader(t *testing.T) {
	p := New(strings.NewReader("y\nmaster\n"), &bytes.Buffer{})

	ok, err := p.Confirm("Create it?")
	if err != nil || !ok {
		t.Fatalf("Confirm() = %v, %v", ok, err)
	}
	buf, err := p.Secret("Master key")
	if err != nil {
		t.Fatalf("Secret() error: %v", err)
	}
	defer buf.Close()
	if string(buf.Bytes()) != "master" {
		t.Errorf("Secret() = %q, want master", buf.Bytes())
	}
}
