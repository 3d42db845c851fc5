// Package prompt acquires the master secret and yes/no answers from the user.
package prompt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/zoobzio/nobrain/secret"
)

// Secret acquisition errors. Each one aborts the run before any derivation.
var (
	ErrCancelled = errors.New("input cancelled")
	ErrEmpty     = errors.New("empty input")
	ErrMismatch  = errors.New("the secrets don't match")
)

// fdReader is an input that may be a terminal, such as *os.File.
type fdReader interface {
	io.Reader
	Fd() uintptr
}

// Prompter writes prompts to Out and reads answers from In.
// Secrets are read with echo disabled when In is a terminal.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

// New returns a Prompter. Prompts usually go to stderr so stdout carries
// only the password.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, reader: bufio.NewReader(in)}
}

// terminal returns the file descriptor of In when it is a terminal.
func (p *Prompter) terminal() (int, bool) {
	f, ok := p.in.(fdReader)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd()) // #nosec G115 -- file descriptors fit in int
	return fd, term.IsTerminal(fd)
}

// Secret prints label and reads one secret.
func (p *Prompter) Secret(label string) (*secret.Buffer, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	var raw []byte
	if fd, ok := p.terminal(); ok {
		var err error
		raw, err = term.ReadPassword(fd)
		fmt.Fprintln(p.out)
		if err != nil {
			clear(raw)
			return nil, fmt.Errorf("read secret: %w", err)
		}
	} else {
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}
		raw = line
	}

	if len(raw) == 0 {
		return nil, ErrEmpty
	}
	return secret.FromBytes(raw)
}

// SecretConfirmed reads a secret twice and fails with ErrMismatch when the
// entries differ.
func (p *Prompter) SecretConfirmed(label, confirmLabel string) (*secret.Buffer, error) {
	first, err := p.Secret(label)
	if err != nil {
		return nil, err
	}
	second, err := p.Secret(confirmLabel)
	if err != nil {
		_ = first.Close()
		return nil, err
	}
	defer second.Close()

	if first.Len() != second.Len() || !first.Equal(second) {
		_ = first.Close()
		return nil, ErrMismatch
	}
	return first, nil
}

// Confirm asks a yes/no question. Only "y" or "yes" (any case) count as yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(string(line))) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// readLine reads up to a newline and strips the line ending.
// End of input before any byte is ErrCancelled.
func (p *Prompter) readLine() ([]byte, error) {
	line, err := p.reader.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		clear(line)
		return nil, fmt.Errorf("read input: %w", err)
	}
	if errors.Is(err, io.EOF) && len(line) == 0 {
		return nil, ErrCancelled
	}
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line, nil
}
