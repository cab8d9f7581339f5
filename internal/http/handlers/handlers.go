package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/football"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream"
)

const rootMessage = "GoalMind Backend is running successfully!"

// FootballService is the endpoint surface the handlers serve.
type FootballService interface {
	Teams(ctx context.Context, params url.Values) (football.Result, error)
	Stats(ctx context.Context, params url.Values) (football.Result, error)
	Fixtures(ctx context.Context, params url.Values) (football.Result, error)
	Live(ctx context.Context, params url.Values) (football.Result, error)
	Standings(ctx context.Context, params url.Values) (football.Result, error)
}

type endpointFunc func(ctx context.Context, params url.Values) (football.Result, error)

// Handler wires HTTP routes to the football service.
type Handler struct {
	svc     FootballService
	logger  *slog.Logger
	redact  upstream.Redactor
	readyFn func() error
}

// NewHandler constructs a Handler. readyFn reports why the service cannot take
// traffic; nil means always ready. redact scrubs error details; nil leaves them as is.
func NewHandler(svc FootballService, logger *slog.Logger, redact upstream.Redactor, readyFn func() error) *Handler {
	if redact == nil {
		redact = upstream.NewRedactor()
	}
	return &Handler{
		svc:     svc,
		logger:  logger,
		redact:  redact,
		readyFn: readyFn,
	}
}

// Root is the liveness banner.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, rootMessage, loggerFromContext(r, h.logger))
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.readyFn != nil {
		if err := h.readyFn(); err != nil {
			writeError(w, r, http.StatusServiceUnavailable, err.Error(), h.logger)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Teams serves GET /api/teams?league=.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.Teams)
}

// Stats serves GET /api/stats?team=&league=.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.Stats)
}

// Fixtures serves GET /api/fixtures and /api/upcoming.
func (h *Handler) Fixtures(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.Fixtures)
}

// Live serves GET /api/live.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.Live)
}

// Standings serves GET /api/standings?league=.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.Standings)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes called with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// InternalError answers with a generic 500; used after a recovered panic.
func (h *Handler) InternalError(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusInternalServerError, "internal server error", h.logger)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, call endpointFunc) {
	logger := loggerFromContext(r, h.logger)
	res, err := call(r.Context(), r.URL.Query())
	if err != nil {
		h.writeFailure(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, res.Body, logger)
}

func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if vErr, ok := football.AsValidationError(err); ok {
		writeError(w, r, http.StatusBadRequest, vErr.Message, logger)
		return
	}
	if fErr, ok := football.AsFetchError(err); ok {
		writeErrorDetails(w, r, http.StatusInternalServerError, fErr.Summary(), h.redact(fErr.Err.Error()), logger)
		return
	}
	writeError(w, r, http.StatusInternalServerError, "internal server error", logger)
}
