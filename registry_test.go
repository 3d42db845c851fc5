package nobrain

import "testing"

func TestUse_Caching(t *testing.T) {
	Reset()

	e1, err := Use(DefaultConfig())
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	e2, err := Use(DefaultConfig())
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if e1 != e2 {
		t.Error("Use() should return cached engine")
	}
}

func TestUse_DistinctConfigs(t *testing.T) {
	Reset()

	cfg := DefaultConfig()
	e1, _ := Use(cfg)

	cfg.MaxIterations = 10
	e2, err := Use(cfg)
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if e1 == e2 {
		t.Error("different configurations should get different engines")
	}
	if e2.MaxIterations() != 10 {
		t.Errorf("MaxIterations() = %d, want 10", e2.MaxIterations())
	}
}

func TestUse_InvalidConfig(t *testing.T) {
	Reset()

	cfg := DefaultConfig()
	cfg.Alphabet = "short"
	if _, err := Use(cfg); err == nil {
		t.Error("Use() should reject invalid configuration")
	}
}

func TestReset(t *testing.T) {
	e1, _ := Use(DefaultConfig())
	Reset()
	e2, _ := Use(DefaultConfig())

	if e1 == e2 {
		t.Error("Reset() should clear cache")
	}
}
