package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/http/requestutil"
)

// CORS allows the configured origins to call the API from browsers.
// An empty list or "*" allows any origin.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", requestutil.HeaderRequestID}),
		handlers.ExposedHeaders([]string{requestutil.HeaderRequestID}),
	)
}
