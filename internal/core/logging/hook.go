package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies the operation and target stored in an event's context
// onto the event as "op" and "target".
type ContextHook struct{}

// Run implements zerolog.Hook.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if op := GetOperation(ctx); op != "" {
		e.Str("op", op)
	}
	if target := GetTarget(ctx); target != "" {
		e.Str("target", target)
	}
}
