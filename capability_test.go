package nobrain

import "testing"

func TestIsValidTransformAlgo(t *testing.T) {
	tests := []struct {
		algo TransformAlgo
		want bool
	}{
		{TransformPBKDF2, true},
		{TransformArgon2, true},
		{TransformSHA256, true},
		{TransformBLAKE3, true},
		{"argon2", false},
		{"md5", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			if got := IsValidTransformAlgo(tt.algo); got != tt.want {
				t.Errorf("IsValidTransformAlgo(%q) = %v, want %v", tt.algo, got, tt.want)
			}
		})
	}
}
