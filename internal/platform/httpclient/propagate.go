package httpclient

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Forwarded header names.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the id sent as X-Request-ID on outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the id sent as X-Correlation-ID on outbound calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// propagate copies the stored ids and the W3C trace context onto req.
func propagate(ctx context.Context, req *http.Request) {
	for key, header := range map[any]string{
		requestIDKey{}:     HeaderRequestID,
		correlationIDKey{}: HeaderCorrelationID,
	} {
		if id, ok := ctx.Value(key).(string); ok && id != "" {
			req.Header.Set(header, id)
		}
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}
