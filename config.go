package nobrain

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable holding the configuration file path.
const ConfigEnv = "NOBRAIN_CONFIG"

// Config describes one deployment of the derivation algorithm.
//
// Every field influences derived passwords except Keyfile, so a
// configuration file must be kept alongside the passwords it produces.
// There is no automatic discovery: the file comes from --config or
// NOBRAIN_CONFIG, and without one the reference configuration applies.
type Config struct {
	// Transform selects the built-in transform. Default: pbkdf2
	Transform TransformAlgo `yaml:"transform"`

	// PBKDF2 configures the pbkdf2 transform.
	PBKDF2 PBKDF2Config `yaml:"pbkdf2"`

	// Argon2 configures the argon2id transform.
	Argon2 Argon2Config `yaml:"argon2"`

	// Hash configures the sha256 and blake3 transforms.
	Hash HashConfig `yaml:"hash"`

	// DigestSize is the digest length in bytes for keyed transforms.
	// Plain hashes are fixed at 32. Default: 32
	DigestSize int `yaml:"digest_size"`

	// Alphabet is the 64-symbol encoding alphabet. Default: DefaultAlphabet
	Alphabet string `yaml:"alphabet"`

	// Symbols is the punctuation the policy requires. Default: DefaultSymbols
	Symbols string `yaml:"symbols"`

	// MaxIterations is the iteration ceiling. Default: 100
	MaxIterations int `yaml:"max_iterations"`

	// Keyfile configures the secondary-secret file.
	Keyfile KeyfileConfig `yaml:"keyfile"`
}

// PBKDF2Config configures PBKDF2-HMAC-SHA256.
type PBKDF2Config struct {
	// Rounds is the PBKDF2 iteration count. Default: 32
	Rounds int `yaml:"rounds"`
}

// Argon2Config configures Argon2id.
type Argon2Config struct {
	Time    uint32 `yaml:"time"`    // Default: 1
	Memory  uint32 `yaml:"memory"`  // KiB. Default: 65536
	Threads uint8  `yaml:"threads"` // Default: 4
}

// HashConfig configures the plain iterated hashes.
type HashConfig struct {
	// Rounds is how many times the hash is applied per transform. Default: 1
	Rounds int `yaml:"rounds"`
}

// KeyfileConfig configures the secondary-secret file.
type KeyfileConfig struct {
	// Path overrides the file location. Default: $NOBRAIN_KEYFILE or ~/.nobrain
	Path string `yaml:"path"`

	// Placeholder is written when the user agrees to create a missing file.
	// Default: __TEST__TEST__TEST__
	Placeholder string `yaml:"placeholder"`
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	argon := DefaultArgon2Params()
	return Config{
		Transform:  TransformPBKDF2,
		PBKDF2:     PBKDF2Config{Rounds: DefaultPBKDF2Params().Rounds},
		Argon2:     Argon2Config{Time: argon.Time, Memory: argon.Memory, Threads: argon.Threads},
		Hash:       HashConfig{Rounds: 1},
		DigestSize: 32,
		Alphabet:   DefaultAlphabet,
		Symbols:    DefaultSymbols,

		MaxIterations: DefaultMaxIterations,
	}
}

// LoadConfig reads a YAML configuration file. Keys absent from the file keep
// their reference values; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML configuration on top of DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolveConfig loads the file named by flagPath, or by NOBRAIN_CONFIG when
// flagPath is empty. With neither, it returns DefaultConfig.
func ResolveConfig(flagPath string) (Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// Validate checks every setting without building an engine.
func (c Config) Validate() error {
	if !IsValidTransformAlgo(c.Transform) {
		return newConfigError(ErrMissingTransform, "transform", string(c.Transform))
	}
	switch c.Transform {
	case TransformPBKDF2:
		if c.PBKDF2.Rounds < 1 {
			return newConfigError(ErrInvalidConfig, "pbkdf2.rounds", fmt.Sprint(c.PBKDF2.Rounds))
		}
	case TransformArgon2:
		if c.Argon2.Time < 1 {
			return newConfigError(ErrInvalidConfig, "argon2.time", fmt.Sprint(c.Argon2.Time))
		}
		if c.Argon2.Threads < 1 {
			return newConfigError(ErrInvalidConfig, "argon2.threads", fmt.Sprint(c.Argon2.Threads))
		}
		if c.Argon2.Memory < 8*uint32(c.Argon2.Threads) {
			return newConfigError(ErrInvalidConfig, "argon2.memory", fmt.Sprint(c.Argon2.Memory))
		}
	case TransformSHA256, TransformBLAKE3:
		if c.Hash.Rounds < 1 {
			return newConfigError(ErrInvalidConfig, "hash.rounds", fmt.Sprint(c.Hash.Rounds))
		}
		if c.DigestSize != 32 {
			return newConfigError(ErrInvalidConfig, "digest_size (plain hashes are 32 bytes)", fmt.Sprint(c.DigestSize))
		}
	}
	if c.DigestSize < 1 {
		return newConfigError(ErrInvalidConfig, "digest_size", fmt.Sprint(c.DigestSize))
	}
	if c.MaxIterations < 1 {
		return newConfigError(ErrInvalidConfig, "max_iterations", fmt.Sprint(c.MaxIterations))
	}
	if c.Symbols == "" {
		return newConfigError(ErrInvalidConfig, "symbols", "")
	}
	if _, err := NewAlphabet(c.Alphabet); err != nil {
		return err
	}
	return nil
}

// TransformFor builds the configured transform.
func (c Config) TransformFor() (Transform, error) {
	switch c.Transform {
	case TransformPBKDF2:
		return PBKDF2WithParams(PBKDF2Params{Rounds: c.PBKDF2.Rounds, KeyLen: c.DigestSize}), nil
	case TransformArgon2:
		return Argon2WithParams(Argon2Params{
			Time:    c.Argon2.Time,
			Memory:  c.Argon2.Memory,
			Threads: c.Argon2.Threads,
			KeyLen:  uint32(c.DigestSize), // #nosec G115 -- validated positive
		}), nil
	case TransformSHA256:
		return SHA256WithRounds(c.Hash.Rounds), nil
	case TransformBLAKE3:
		return BLAKE3WithRounds(c.Hash.Rounds), nil
	}
	return nil, newConfigError(ErrMissingTransform, "transform", string(c.Transform))
}

// Engine validates the configuration and builds an Engine from it.
func (c Config) Engine() (*Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	t, err := c.TransformFor()
	if err != nil {
		return nil, err
	}
	alphabet, err := NewAlphabet(c.Alphabet)
	if err != nil {
		return nil, err
	}
	return New(
		WithTransform(string(c.Transform), t),
		WithAlphabet(alphabet),
		WithPolicy(NewPolicy(c.Symbols)),
		WithMaxIterations(c.MaxIterations),
	)
}
