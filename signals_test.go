package nobrain

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitEngineCreated(_ *testing.T) {
	// Should not panic
	emitEngineCreated(context.Background(), "pbkdf2", 32, 100)
}

func TestEmitDeriveStart(_ *testing.T) {
	emitDeriveStart(context.Background(), "pbkdf2")
}

func TestEmitDeriveComplete_Success(_ *testing.T) {
	emitDeriveComplete(context.Background(), "pbkdf2", 2, time.Millisecond, nil)
}

func TestEmitDeriveComplete_Error(_ *testing.T) {
	emitDeriveComplete(context.Background(), "pbkdf2", 100, time.Millisecond, errors.New("test error"))
}

func TestSignalVariables(t *testing.T) {
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalEngineCreated", SignalEngineCreated},
		{"SignalDeriveStart", SignalDeriveStart},
		{"SignalDeriveComplete", SignalDeriveComplete},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyTransform", KeyTransform},
		{"KeyDigestSize", KeyDigestSize},
		{"KeyMaxIterations", KeyMaxIterations},
		{"KeyIterations", KeyIterations},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
