// Package secret holds secret bytes in memory that is locked against swap,
// excluded from core dumps and zeroed on Close.
//
// Buffers are mmap'd outside the Go heap, so the garbage collector never
// copies them. The master secret and the keyfile contents live in a Buffer
// for exactly as long as one derivation needs them.
package secret

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// ErrEmpty is returned when a buffer would hold no bytes.
var ErrEmpty = errors.New("secret: empty source")

// Buffer is a fixed-size region of protected memory.
//
// A Buffer must not be copied. After Close, Bytes panics.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	closed bool
}

// New allocates a zero-filled buffer of size bytes.
// The caller must call Close when the secret is no longer needed.
func New(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("secret: buffer size must be positive, got %d", size)
	}

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("secret: mmap: %w", err)
	}
	if err := unix.Mlock(data); err != nil {
		_ = unix.Munmap(data)
		return nil, fmt.Errorf("secret: mlock: %w", err)
	}
	if err := unix.Madvise(data, unix.MADV_DONTDUMP); err != nil {
		_ = unix.Munlock(data)
		_ = unix.Munmap(data)
		return nil, fmt.Errorf("secret: madvise: %w", err)
	}

	return &Buffer{data: data}, nil
}

// FromBytes moves source into a new buffer. source is zeroed, even on error.
func FromBytes(source []byte) (*Buffer, error) {
	defer clear(source)
	if len(source) == 0 {
		return nil, ErrEmpty
	}

	b, err := New(len(source))
	if err != nil {
		return nil, err
	}
	copy(b.data, source)
	return b, nil
}

// ReadFile reads a whole file into a buffer. The bytes are kept exactly as
// stored: no whitespace or newline is trimmed. An empty file yields ErrEmpty.
func ReadFile(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromBytes(data)
}

// Bytes returns the secret. The slice points into the protected region;
// do not keep it past Close.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		panic("secret: read from closed buffer")
	}
	return b.data
}

// Len returns the size of the secret, or 0 after Close.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Equal compares two buffers in constant time with respect to their contents.
func (b *Buffer) Equal(other *Buffer) bool {
	return subtle.ConstantTimeCompare(b.Bytes(), other.Bytes()) == 1
}

// Close zeroes, unlocks and unmaps the buffer. Close is idempotent and
// safe on a nil Buffer.
func (b *Buffer) Close() error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	clear(b.data)

	var firstErr error
	if err := unix.Munlock(b.data); err != nil {
		firstErr = fmt.Errorf("secret: munlock: %w", err)
	}
	if err := unix.Munmap(b.data); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("secret: munmap: %w", err)
	}
	b.data = nil
	return firstErr
}
