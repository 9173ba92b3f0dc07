package logging

import "context"

type ctxKey struct{}

// WithRequestID stores the outbound request id in ctx so that every log
// line written with that context carries a "request_id" attribute.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the request id stored by WithRequestID, if any.
func RequestID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

func withContextAttrs(ctx context.Context, args []any) []any {
	if id, ok := RequestID(ctx); ok {
		return append(args, "request_id", id)
	}
	return args
}
