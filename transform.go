package nobrain

import (
	"crypto/sha256"
	"errors"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// Transform turns a byte string into a fixed-size pseudorandom digest.
//
// Keyed transforms receive the master secret as key and never see it in
// the input. Unkeyed transforms ignore key; the composer embeds the master
// secret in the input instead.
type Transform interface {
	// Apply returns the digest of input. The result must be exactly Size() bytes
	// and must depend only on input and key.
	Apply(input, key []byte) ([]byte, error)

	// Size returns the digest length in bytes.
	Size() int

	// Keyed reports whether Apply consumes key.
	Keyed() bool
}

// PBKDF2Params configures PBKDF2-HMAC-SHA256.
type PBKDF2Params struct {
	Rounds int // Number of PBKDF2 iterations
	KeyLen int // Output digest length
}

// DefaultPBKDF2Params returns the reference PBKDF2 parameters.
// Changing either value changes every derived password.
func DefaultPBKDF2Params() PBKDF2Params {
	return PBKDF2Params{
		Rounds: 32,
		KeyLen: 32,
	}
}

// pbkdf2Transform implements PBKDF2-HMAC-SHA256 with the composed input as
// password and the master secret as salt.
type pbkdf2Transform struct {
	params PBKDF2Params
}

// PBKDF2 returns a PBKDF2 transform with the reference parameters.
func PBKDF2() Transform {
	return PBKDF2WithParams(DefaultPBKDF2Params())
}

// PBKDF2WithParams returns a PBKDF2 transform with custom parameters.
func PBKDF2WithParams(params PBKDF2Params) Transform {
	return &pbkdf2Transform{params: params}
}

func (t *pbkdf2Transform) Apply(input, key []byte) ([]byte, error) {
	if t.params.Rounds < 1 || t.params.KeyLen < 1 {
		return nil, errors.New("pbkdf2: rounds and key length must be positive")
	}
	return pbkdf2.Key(input, key, t.params.Rounds, t.params.KeyLen, sha256.New), nil
}

func (t *pbkdf2Transform) Size() int   { return t.params.KeyLen }
func (t *pbkdf2Transform) Keyed() bool { return true }

// Argon2Params configures Argon2id.
type Argon2Params struct {
	Time    uint32 // Number of passes
	Memory  uint32 // Memory usage in KiB
	Threads uint8  // Parallelism factor
	KeyLen  uint32 // Output digest length
}

// DefaultArgon2Params returns Argon2id parameters sized for interactive use.
// Every loop iteration pays this cost again.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  64 * 1024, // 64 MiB
		Threads: 4,
		KeyLen:  32,
	}
}

// argon2Transform implements Argon2id with the master secret as salt.
type argon2Transform struct {
	params Argon2Params
}

// Argon2 returns an Argon2id transform with default parameters.
func Argon2() Transform {
	return Argon2WithParams(DefaultArgon2Params())
}

// Argon2WithParams returns an Argon2id transform with custom parameters.
func Argon2WithParams(params Argon2Params) Transform {
	return &argon2Transform{params: params}
}

func (t *argon2Transform) Apply(input, key []byte) ([]byte, error) {
	if t.params.Time < 1 || t.params.Threads < 1 || t.params.KeyLen < 1 {
		return nil, errors.New("argon2: time, threads and key length must be positive")
	}
	return argon2.IDKey(input, key, t.params.Time, t.params.Memory, t.params.Threads, t.params.KeyLen), nil
}

func (t *argon2Transform) Size() int   { return int(t.params.KeyLen) }
func (t *argon2Transform) Keyed() bool { return true }

// sha256Transform implements plain iterated SHA-256.
type sha256Transform struct {
	rounds int
}

// SHA256 returns a single-round SHA-256 transform.
func SHA256() Transform {
	return SHA256WithRounds(1)
}

// SHA256WithRounds returns a SHA-256 transform that rehashes its own output
// rounds-1 additional times.
func SHA256WithRounds(rounds int) Transform {
	return &sha256Transform{rounds: rounds}
}

func (t *sha256Transform) Apply(input, _ []byte) ([]byte, error) {
	if t.rounds < 1 {
		return nil, errors.New("sha256: rounds must be positive")
	}
	sum := sha256.Sum256(input)
	for i := 1; i < t.rounds; i++ {
		sum = sha256.Sum256(sum[:])
	}
	return sum[:], nil
}

func (t *sha256Transform) Size() int   { return sha256.Size }
func (t *sha256Transform) Keyed() bool { return false }

// blake3Transform implements plain iterated BLAKE3-256.
type blake3Transform struct {
	rounds int
}

// BLAKE3 returns a single-round BLAKE3-256 transform.
func BLAKE3() Transform {
	return BLAKE3WithRounds(1)
}

// BLAKE3WithRounds returns a BLAKE3 transform that rehashes its own output
// rounds-1 additional times.
func BLAKE3WithRounds(rounds int) Transform {
	return &blake3Transform{rounds: rounds}
}

func (t *blake3Transform) Apply(input, _ []byte) ([]byte, error) {
	if t.rounds < 1 {
		return nil, errors.New("blake3: rounds must be positive")
	}
	sum := blake3.Sum256(input)
	for i := 1; i < t.rounds; i++ {
		sum = blake3.Sum256(sum[:])
	}
	return sum[:], nil
}

func (t *blake3Transform) Size() int   { return 32 }
func (t *blake3Transform) Keyed() bool { return false }

// builtinTransforms returns the default transform registry.
func builtinTransforms() map[TransformAlgo]Transform {
	return map[TransformAlgo]Transform{
		TransformPBKDF2: PBKDF2(),
		TransformArgon2: Argon2(),
		TransformSHA256: SHA256(),
		TransformBLAKE3: BLAKE3(),
	}
}

// BuiltinTransform returns the built-in transform registered under algo
// with its default parameters.
func BuiltinTransform(algo TransformAlgo) (Transform, error) {
	t, ok := builtinTransforms()[algo]
	if !ok {
		return nil, newConfigError(ErrMissingTransform, "transform", string(algo))
	}
	return t, nil
}
