package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/http/requestutil"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/logging"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/metrics"
)

// unmatchedRoute groups unknown paths so metric cardinality stays bounded.
const unmatchedRoute = "/:unmatched"

var knownRoutes = map[string]struct{}{
	"/":              {},
	"/health":        {},
	"/ready":         {},
	"/api/teams":     {},
	"/api/stats":     {},
	"/api/fixtures":  {},
	"/api/upcoming":  {},
	"/api/live":      {},
	"/api/standings": {},
}

// LoggingMiddleware wraps the handler with request logging, request ID support, and metrics.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := requestutil.SanitizeRequestID(r.Header.Get(requestutil.HeaderRequestID))
		w.Header().Set(requestutil.HeaderRequestID, reqID)

		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("query", r.URL.RawQuery),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)

		ctx := logging.WithLogger(r.Context(), logger)
		ctx = requestutil.WithRequestID(ctx, reqID)
		r = r.WithContext(ctx)
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		recorder.RecordHTTPRequest(r.Method, normalizePath(r.URL.Path), ww.status, duration)

		level := slog.LevelInfo
		if ww.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(ctx, level, "request complete",
			slog.Int(logging.FieldStatusCode, ww.status),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func normalizePath(path string) string {
	if path == "" {
		return ""
	}
	if _, ok := knownRoutes[path]; ok {
		return path
	}
	return unmatchedRoute
}
