package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/football"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/testutil"
	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream"
)

const secret = "super-secret-key"

func newTestHandler(f upstream.Fetcher) *Handler {
	svc := football.NewService(f, football.Options{
		Season: 2024,
		Now:    testutil.NowAt(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
	})
	return NewHandler(svc, nil, upstream.NewRedactor(secret), nil)
}

func TestRoot(t *testing.T) {
	h := newTestHandler(&testutil.FakeFetcher{})
	rr := testutil.Serve(http.HandlerFunc(h.Root), http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Body.String() != "GoalMind Backend is running successfully!" {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&testutil.FakeFetcher{})

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newTestHandler(&testutil.FakeFetcher{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestReady(t *testing.T) {
	h := newTestHandler(&testutil.FakeFetcher{})
	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	h.readyFn = func() error { return upstream.ErrMissingCredential }
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "upstream credential not configured" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestTeamsPassesPayloadThrough(t *testing.T) {
	f := &testutil.FakeFetcher{Payload: testutil.Envelope(testutil.SampleTeams(2))}
	h := newTestHandler(f)

	rr := testutil.Serve(http.HandlerFunc(h.Teams), http.MethodGet, "/api/teams?league=39", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body map[string]any
	testutil.DecodeJSON(t, rr, &body)
	items, ok := body["response"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("expected full envelope with 2 teams, got %v", body)
	}
	if _, ok := body["errors"]; !ok {
		t.Fatalf("expected envelope fields preserved")
	}
}

func TestValidationErrorsReturn400WithoutUpstreamCall(t *testing.T) {
	cases := []struct {
		handler string
		target  string
		msg     string
	}{
		{"teams", "/api/teams", "League ID is required"},
		{"stats", "/api/stats?league=39", "Team and league are required"},
		{"fixtures", "/api/fixtures", "League ID is required"},
		{"standings", "/api/standings?league=", "League ID is required"},
		{"standings", "/api/standings?league=abc", "League ID must be a positive integer"},
	}
	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			f := &testutil.FakeFetcher{Payload: testutil.Envelope([]any{})}
			h := newTestHandler(f)
			routes := map[string]http.HandlerFunc{
				"teams": h.Teams, "stats": h.Stats, "fixtures": h.Fixtures, "standings": h.Standings,
			}

			rr := testutil.Serve(routes[tc.handler], http.MethodGet, tc.target, nil)
			testutil.AssertStatus(t, rr, http.StatusBadRequest)
			var body map[string]string
			testutil.DecodeJSON(t, rr, &body)
			if body["error"] != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, body["error"])
			}
			if f.Calls() != 0 {
				t.Fatalf("expected no upstream calls, got %d", f.Calls())
			}
		})
	}
}

func TestUpstreamFailureReturns500WithRedactedDetails(t *testing.T) {
	f := &testutil.FakeFetcher{Err: errors.New("Get https://upstream/teams: key " + secret + " rejected")}
	h := newTestHandler(f)

	rr := testutil.Serve(http.HandlerFunc(h.Teams), http.MethodGet, "/api/teams?league=39", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)

	if strings.Contains(rr.Body.String(), secret) {
		t.Fatalf("credential leaked into response: %s", rr.Body.String())
	}
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "Failed to fetch teams" {
		t.Fatalf("unexpected error %q", body["error"])
	}
	if body["details"] == "" {
		t.Fatalf("expected details")
	}
}

func TestEnvelopeErrorsReturn500(t *testing.T) {
	f := &testutil.FakeFetcher{Err: &upstream.StatusError{Provider: "apifootball", Path: "/fixtures", Message: "token: Error/Missing application key."}}
	h := newTestHandler(f)

	rr := testutil.Serve(http.HandlerFunc(h.Live), http.MethodGet, "/api/live", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "Failed to fetch live matches" {
		t.Fatalf("unexpected error %q", body["error"])
	}
}

func TestMissingResultFieldReturns500(t *testing.T) {
	f := &testutil.FakeFetcher{Payload: upstream.Payload{"errors": []any{}}}
	h := newTestHandler(f)

	rr := testutil.Serve(http.HandlerFunc(h.Stats), http.MethodGet, "/api/stats?team=33&league=39", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "Failed to fetch stats" {
		t.Fatalf("unexpected error %q", body["error"])
	}
}

func TestFixturesEmptyReturnsMessage(t *testing.T) {
	f := &testutil.FakeFetcher{Payload: testutil.Envelope([]any{})}
	h := newTestHandler(f)

	rr := testutil.Serve(http.HandlerFunc(h.Fixtures), http.MethodGet, "/api/upcoming?league=39", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var body map[string]any
	testutil.DecodeJSON(t, rr, &body)
	if body["message"] != "No upcoming fixtures found in next 2 weeks" {
		t.Fatalf("unexpected message %v", body["message"])
	}

	call, _ := f.LastCall()
	if call.Params.Get("from") != "2024-06-01" || call.Params.Get("to") != "2024-06-15" {
		t.Fatalf("unexpected window %v", call.Params)
	}
}

func TestStandingsReturnsTopTenArray(t *testing.T) {
	f := &testutil.FakeFetcher{Payload: testutil.SampleStandingsEnvelope(20)}
	h := newTestHandler(f)

	rr := testutil.Serve(http.HandlerFunc(h.Standings), http.MethodGet, "/api/standings?league=39", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var rows []map[string]any
	testutil.DecodeJSON(t, rr, &rows)
	if len(rows) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(rows))
	}
	if rows[0]["rank"].(float64) != 1 || rows[9]["rank"].(float64) != 10 {
		t.Fatalf("expected order preserved, got %v..%v", rows[0]["rank"], rows[9]["rank"])
	}
}

func TestStandingsEmptyReturnsEmptyArray(t *testing.T) {
	f := &testutil.FakeFetcher{Payload: testutil.Envelope([]any{})}
	h := newTestHandler(f)

	rr := testutil.Serve(http.HandlerFunc(h.Standings), http.MethodGet, "/api/standings?league=39", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := strings.TrimSpace(rr.Body.String()); got != "[]" {
		t.Fatalf("expected empty array, got %s", got)
	}
}

func TestClientDisconnectCancelsUpstream(t *testing.T) {
	b := &testutil.BlockingFetcher{Started: make(chan struct{})}
	h := newTestHandler(b)

	req := httptest.NewRequest(http.MethodGet, "/api/live", nil)
	ctx, cancel := context.WithCancel(req.Context())
	req = req.WithContext(ctx)

	done := make(chan *httptest.ResponseRecorder, 1)
	go func() { done <- testutil.ServeRequest(http.HandlerFunc(h.Live), req) }()
	<-b.Started
	cancel()

	select {
	case rr := <-done:
		testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	case <-time.After(time.Second):
		t.Fatal("expected handler to return after cancellation")
	}
}

type unknownErrService struct{}

func (unknownErrService) Teams(context.Context, url.Values) (football.Result, error) {
	return football.Result{}, errors.New("unexpected")
}
func (unknownErrService) Stats(context.Context, url.Values) (football.Result, error) {
	return football.Result{}, nil
}
func (unknownErrService) Fixtures(context.Context, url.Values) (football.Result, error) {
	return football.Result{}, nil
}
func (unknownErrService) Live(context.Context, url.Values) (football.Result, error) {
	return football.Result{}, nil
}
func (unknownErrService) Standings(context.Context, url.Values) (football.Result, error) {
	return football.Result{}, nil
}

func TestUnclassifiedErrorReturnsGeneric500(t *testing.T) {
	h := NewHandler(unknownErrService{}, nil, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Teams), http.MethodGet, "/api/teams?league=1", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "internal server error" || body["details"] != "" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	h := newTestHandler(&testutil.FakeFetcher{})
	rr := testutil.Serve(http.HandlerFunc(h.NotFound), http.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	rr = testutil.Serve(http.HandlerFunc(h.MethodNotAllowed), http.MethodPost, "/api/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestInternalErrorWritesJSONWithRequestID(t *testing.T) {
	h := newTestHandler(&testutil.FakeFetcher{})
	req := httptest.NewRequest(http.MethodGet, "/api/live", nil)
	req.Header.Set("X-Request-ID", "req-9")
	rr := testutil.ServeRequest(http.HandlerFunc(h.InternalError), req)

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	var body errorBody
	testutil.DecodeJSON(t, rr, &body)
	if body.Error != "internal server error" || body.RequestID != "req-9" {
		t.Fatalf("unexpected body %+v", body)
	}
}
