package log

import "context"

const (
	ModeProduction = "production"
	EncodingJSON   = "json"

	fieldRequestID = "request_id"
)

type requestIDKey struct{}

// WithRequestID attaches a request id that every log line for ctx will carry.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}
