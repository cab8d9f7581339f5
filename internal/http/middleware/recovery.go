package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/logging"
)

// Recovery turns handler panics into a response from fallback and logs them.
// A panic after the handler has started writing only ends the request.
func Recovery(logger *slog.Logger, fallback http.Handler) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logging.FromContext(r.Context(), logger).Error("panic recovered",
					slog.String("panic", fmt.Sprint(rec)),
				)
				if ww.wroteHeader {
					return
				}
				if fallback == nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				fallback.ServeHTTP(w, r)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
