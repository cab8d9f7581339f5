package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
}

func TestFixturesHelper(t *testing.T) {
	env := Envelope(SampleTeams(3))
	if env["results"] != 3 {
		t.Fatalf("expected results count, got %v", env["results"])
	}
	if _, ok := env.Result(); !ok {
		t.Fatalf("expected response field")
	}

	standings := SampleStandingsEnvelope(12)
	result, _ := standings.Result()
	league := result.([]any)[0].(map[string]any)["league"].(map[string]any)
	if rows := league["standings"].([]any)[0].([]any); len(rows) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(rows))
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestHTTPHelperErrorFormatting(t *testing.T) {
	rr := httptest.NewRecorder()
	rr.WriteHeader(http.StatusBadRequest)
	rr.WriteString(strings.Repeat("x", 600))

	if err := statusError(rr, http.StatusOK); err == nil {
		t.Fatalf("expected status error")
	} else if !strings.Contains(err.Error(), "body=") {
		t.Fatalf("expected body snippet in error, got %v", err)
	}

	rr = httptest.NewRecorder()
	rr.WriteHeader(http.StatusOK)
	if err := statusError(rr, http.StatusOK); err != nil {
		t.Fatalf("expected nil error when status matches, got %v", err)
	}

	rr = httptest.NewRecorder()
	rr.WriteString(`{"ok":true}`)
	if err := decodeJSONBody(rr, &map[string]any{}); err != nil {
		t.Fatalf("expected decode success, got %v", err)
	}
	rr = httptest.NewRecorder()
	rr.WriteString("not-json")
	var dest map[string]any
	if err := decodeJSONBody(rr, &dest); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestServerStubs(t *testing.T) {
	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	sh.HandlerVal = http.NewServeMux()
	_ = sh.ListenAndServe()
	_ = sh.Shutdown(context.Background())
	_ = sh.Handler()
	_ = sh.Addr()
	if sh.ListenCalls != 1 || sh.ShutdownCalls != 1 {
		t.Fatalf("expected listen/shutdown calls, got %+v", sh)
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{}), HandlerVal: http.NewServeMux()}
	if err := b.ListenAndServe(); err != nil {
		t.Fatalf("expected nil listen error for blocking server")
	}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	_ = b.Handler()
	if b.Addr() != b.AddrVal {
		t.Fatalf("expected blocking server addr passthrough")
	}
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}
	if b.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown called once")
	}

	e := &ErrHTTPServer{}
	_ = e.ListenAndServe()
	_ = e.Shutdown(context.Background())
	_ = e.Handler()
	if e.Addr() == "" {
		t.Fatalf("expected addr from ErrHTTPServer")
	}
	if e.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown call for ErrHTTPServer")
	}

	c := &CloseableHTTPServer{}
	_ = c.ListenAndServe()
	_ = c.Shutdown(context.Background())
	_ = c.Handler()
	if c.Addr() == "" {
		t.Fatalf("expected addr from CloseableHTTPServer")
	}
	if c.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown call for CloseableHTTPServer")
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestFakeFetcher(t *testing.T) {
	ctx := context.Background()
	f := &FakeFetcher{Payload: Envelope([]any{})}

	params := url.Values{"league": {"39"}}
	got, err := f.Fetch(ctx, "/teams", params)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	got["message"] = "mutated"
	if _, shared := f.Payload["message"]; shared {
		t.Fatalf("expected payload copy")
	}
	params.Set("league", "changed")
	call, ok := f.LastCall()
	if !ok || call.Path != "/teams" || call.Params.Get("league") != "39" {
		t.Fatalf("unexpected recorded call %+v", call)
	}

	errFetcher := &FakeFetcher{Err: upstream.ErrProviderUnavailable}
	if _, err := errFetcher.Fetch(ctx, "/live", nil); !errors.Is(err, upstream.ErrProviderUnavailable) {
		t.Fatalf("expected error passthrough")
	}

	responder := &FakeFetcher{Respond: func(path string, params url.Values) (upstream.Payload, error) {
		return upstream.Payload{"path": path}, nil
	}}
	if p, _ := responder.Fetch(ctx, "/standings", nil); p["path"] != "/standings" {
		t.Fatalf("expected Respond to be used")
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.Fetch(ctx, "/teams", nil)
		}()
	}
	wg.Wait()
	if f.Calls() != 21 {
		t.Fatalf("expected 21 calls, got %d", f.Calls())
	}

	if _, ok := (&FakeFetcher{}).LastCall(); ok {
		t.Fatalf("expected no last call on fresh fetcher")
	}
}

func TestBlockingFetcherStopsOnCancel(t *testing.T) {
	b := &BlockingFetcher{Started: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := b.Fetch(ctx, "/live", nil)
		done <- err
	}()
	<-b.Started
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}
