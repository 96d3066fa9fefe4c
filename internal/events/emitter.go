package events

import (
	"context"
	"log"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit sends a payload to the frontend. It is a no-op until
// EnableRuntimeEmitter or SetCustomEmitter is called.
var Emit = func(ctx context.Context, name string, payload any) {}

// Logf is the diagnostic logger used across the app. It writes through std log
// until EnableRuntimeLogger swaps in the Wails runtime logger.
var Logf = log.Printf

func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, payload any) {
		runtime.EventsEmit(ctx, name, payload)

		if evt, ok := payload.(DebugEvent); ok {
			logRuntimeEvent(ctx, name, evt)
		}
	}
}

// EnableRuntimeLogger routes Logf to the Wails runtime logger bound to ctx.
func EnableRuntimeLogger(ctx context.Context) {
	Logf = func(format string, args ...any) {
		runtime.LogInfof(ctx, format, args...)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, payload any)) {
	if f == nil {
		Emit = func(context.Context, string, any) {}
		return
	}
	Emit = f
}
