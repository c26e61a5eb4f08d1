package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

const corsMaxAgeSeconds = 300

// CORS returns middleware that answers cross-origin requests from the given
// origins. "*" allows any origin and an empty list allows none. Every method
// and request header is allowed. Preflight requests are answered with 204
// and never reach the router.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{headerRequestID, headerCorrelationID, "Location"},
		MaxAge:         corsMaxAgeSeconds,
	})
}
