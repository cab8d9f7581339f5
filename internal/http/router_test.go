package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/football"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/http/handlers"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/testutil"
)

func newTestRouter(f *testutil.FakeFetcher) http.Handler {
	svc := football.NewService(f, football.Options{Season: 2024})
	return NewRouter(handlers.NewHandler(svc, nil, nil, nil))
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	f := &testutil.FakeFetcher{Payload: testutil.Envelope(testutil.SampleTeams(1))}
	router := newTestRouter(f)

	cases := map[string]int{
		"/":                            http.StatusOK,
		"/health":                      http.StatusOK,
		"/ready":                       http.StatusOK,
		"/api/teams?league=39":         http.StatusOK,
		"/api/stats?team=33&league=39": http.StatusOK,
		"/api/fixtures?league=39":      http.StatusOK,
		"/api/upcoming?league=39":      http.StatusOK,
		"/api/live":                    http.StatusOK,
		"/api/standings?league=39":     http.StatusInternalServerError, // teams payload has no league.standings
		"/api/teams":                   http.StatusBadRequest,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUpcomingAliasesFixtures(t *testing.T) {
	f := &testutil.FakeFetcher{Payload: testutil.Envelope([]any{})}
	router := newTestRouter(f)

	for _, path := range []string{"/api/fixtures?league=39", "/api/upcoming?league=39"} {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
		call, _ := f.LastCall()
		if call.Path != "/fixtures" {
			t.Fatalf("%s: expected /fixtures upstream, got %s", path, call.Path)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(&testutil.FakeFetcher{})

	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "not found" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestRouterWrongMethodReturns405(t *testing.T) {
	f := &testutil.FakeFetcher{}
	router := newTestRouter(f)

	for _, path := range []string{"/health", "/api/teams?league=39"} {
		rr := testutil.Serve(router, http.MethodPost, path, nil)
		testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
	}
	if f.Calls() != 0 {
		t.Fatalf("expected no upstream calls for rejected methods")
	}
}
