package nobrain

// TransformAlgo names a built-in transform.
// Use these constants in configuration files: `transform: pbkdf2`
type TransformAlgo string

const (
	// TransformPBKDF2 uses PBKDF2-HMAC-SHA256 keyed by the master secret.
	// This is the reference configuration.
	TransformPBKDF2 TransformAlgo = "pbkdf2"

	// TransformArgon2 uses Argon2id keyed by the master secret (slow, memory-hard).
	TransformArgon2 TransformAlgo = "argon2id"

	// TransformSHA256 uses plain iterated SHA-256 over an input that embeds the master secret.
	TransformSHA256 TransformAlgo = "sha256"

	// TransformBLAKE3 uses plain iterated BLAKE3-256 over an input that embeds the master secret.
	TransformBLAKE3 TransformAlgo = "blake3"
)

// validTransformAlgos contains all valid transform names for configuration validation.
var validTransformAlgos = map[TransformAlgo]bool{
	TransformPBKDF2: true,
	TransformArgon2: true,
	TransformSHA256: true,
	TransformBLAKE3: true,
}

// IsValidTransformAlgo returns true if the algorithm is a known transform.
func IsValidTransformAlgo(algo TransformAlgo) bool {
	return validTransformAlgos[algo]
}
