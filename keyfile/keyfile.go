// Package keyfile reads the optional secondary secret from a local file.
//
// The file content is an opaque blob used byte for byte. It is never
// regenerated; when missing, the user may agree to create it with a fixed
// placeholder value.
package keyfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zoobzio/capitan"

	"github.com/zoobzio/nobrain/secret"
)

const (
	// Env names the environment variable overriding the file location.
	Env = "NOBRAIN_KEYFILE"

	// FileName is the file created in the home directory by default.
	FileName = ".nobrain"

	// DefaultPlaceholder is written when a missing file is created.
	DefaultPlaceholder = "__TEST__TEST__TEST__"
)

// ErrUnavailable is returned when the file is missing and the user declines
// to create it. Derivation must not proceed with a substitute.
var ErrUnavailable = errors.New("secondary secret unavailable")

// Signals for keyfile events.
var (
	SignalCreated = capitan.NewSignal("nobrain.keyfile.created", "Secondary secret file created")
	KeyPath       = capitan.NewStringKey("path")
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Store locates the secondary-secret file.
type Store struct {
	Path        string
	Placeholder string
}

// DefaultPath returns $NOBRAIN_KEYFILE, or ~/.nobrain.
func DefaultPath() (string, error) {
	if p := os.Getenv(Env); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// New returns a Store. An empty path resolves through DefaultPath and an
// empty placeholder falls back to DefaultPlaceholder.
func New(path, placeholder string) (*Store, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &Store{Path: path, Placeholder: placeholder}, nil
}

// Read returns the file content. A missing file yields an error matching
// fs.ErrNotExist. An empty file yields a nil buffer and no error: it
// contributes nothing to the composed input.
func (s *Store) Read() (*secret.Buffer, error) {
	buf, err := secret.ReadFile(s.Path)
	if errors.Is(err, secret.ErrEmpty) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Create writes the placeholder to a new file with mode 0600 and returns it.
// An existing file is never overwritten.
func (s *Store) Create(ctx context.Context) (*secret.Buffer, error) {
	f, err := os.OpenFile(s.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", s.Path, err)
	}
	if _, err := f.WriteString(s.Placeholder); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write %s: %w", s.Path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("write %s: %w", s.Path, err)
	}

	capitan.Emit(ctx, SignalCreated, KeyPath.Field(s.Path))
	return secret.FromBytes([]byte(s.Placeholder))
}

// Load reads the file, or offers to create it when missing. created reports
// whether the file was just written. A declined offer returns ErrUnavailable.
func (s *Store) Load(ctx context.Context, c Confirmer) (buf *secret.Buffer, created bool, err error) {
	buf, err = s.Read()
	if err == nil {
		return buf, false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, fmt.Errorf("read %s: %w", s.Path, err)
	}

	ok, err := c.Confirm(fmt.Sprintf("Secondary secret file %s does not exist. Create it?", s.Path))
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrUnavailable, s.Path)
	}

	buf, err = s.Create(ctx)
	if err != nil {
		return nil, false, err
	}
	return buf, true, nil
}
