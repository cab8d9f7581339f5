package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/http/handlers"
)

// NewRouter registers HTTP routes on a gorilla/mux router.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)

	r.HandleFunc("/", handler.Root).Methods(nethttp.MethodGet)
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)

	r.HandleFunc("/api/teams", handler.Teams).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/stats", handler.Stats).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/fixtures", handler.Fixtures).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/upcoming", handler.Fixtures).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/live", handler.Live).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/standings", handler.Standings).Methods(nethttp.MethodGet)
	return r
}
