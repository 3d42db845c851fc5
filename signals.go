package nobrain

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for engine events. Fields never carry secrets, candidates or digests.
var (
	SignalEngineCreated  = capitan.NewSignal("nobrain.engine.created", "Engine instantiated")
	SignalDeriveStart    = capitan.NewSignal("nobrain.derive.start", "Derivation beginning")
	SignalDeriveComplete = capitan.NewSignal("nobrain.derive.complete", "Derivation finished")
)

// Keys for typed event data.
var (
	KeyTransform     = capitan.NewStringKey("transform")
	KeyDigestSize    = capitan.NewIntKey("digest_size")
	KeyMaxIterations = capitan.NewIntKey("max_iterations")
	KeyIterations    = capitan.NewIntKey("iterations")
	KeyDuration      = capitan.NewDurationKey("duration")
	KeyError         = capitan.NewErrorKey("error")
)

// emitEngineCreated emits an event when an engine is built.
func emitEngineCreated(ctx context.Context, transform string, digestSize, maxIterations int) {
	capitan.Emit(ctx, SignalEngineCreated,
		KeyTransform.Field(transform),
		KeyDigestSize.Field(digestSize),
		KeyMaxIterations.Field(maxIterations),
	)
}

// emitDeriveStart emits an event when a derivation begins.
func emitDeriveStart(ctx context.Context, transform string) {
	capitan.Emit(ctx, SignalDeriveStart,
		KeyTransform.Field(transform),
	)
}

// emitDeriveComplete emits an event when a derivation finishes.
func emitDeriveComplete(ctx context.Context, transform string, iterations int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTransform.Field(transform),
		KeyIterations.Field(iterations),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDeriveComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDeriveComplete, fields...)
	}
}
