package logging

import "context"

type contextKey string

const (
	operationKey contextKey = "op"
	targetKey    contextKey = "target"
)

// WithOperation records the svnkit operation being performed, such as
// "commit" or "ignore add".
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// WithTarget records the working copy path or URL an operation acts on.
func WithTarget(ctx context.Context, target string) context.Context {
	return context.WithValue(ctx, targetKey, target)
}

// GetOperation returns the operation stored in ctx, or "".
func GetOperation(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey).(string); ok {
		return op
	}
	return ""
}

// GetTarget returns the target stored in ctx, or "".
func GetTarget(ctx context.Context) string {
	if target, ok := ctx.Value(targetKey).(string); ok {
		return target
	}
	return ""
}
