package graph

import (
	"context"
	"runtime/debug"

	"github.com/rs/zerolog/log"
)

// panicLogger reports resolver panics recovered by the engine.
type panicLogger struct{}

func (panicLogger) LogPanic(ctx context.Context, value interface{}) {
	log.Error().
		Interface("panic", value).
		Bytes("stack", debug.Stack()).
		Msg("Recovered from panic in resolver")
}
