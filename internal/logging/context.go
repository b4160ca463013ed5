package logging

import "context"

// RequestIDKey is the field name under which the request ID is logged.
const RequestIDKey = "request_id"

type requestIDKey struct{}

// ContextWithRequestID returns a copy of ctx carrying id. Both backends add
// it to every record logged with that context. An empty id leaves ctx as is.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID stored in ctx, if any.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

func withContextArgs(ctx context.Context, args []any) []any {
	if id, ok := RequestIDFromContext(ctx); ok {
		return append(args, RequestIDKey, id)
	}
	return args
}
