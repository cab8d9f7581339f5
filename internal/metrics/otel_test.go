package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledExposesPrometheusMetrics(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: true,
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	rec.RecordHTTPRequest("GET", "/api/teams", 200, time.Millisecond)
	rec.RecordUpstreamAttempt("apifootball", "/teams", time.Millisecond, nil)
	rec.RecordUpstreamAttempt("apifootball", "/teams", time.Millisecond, errors.New("boom"))
	rec.RecordRateLimit("apifootball", time.Second)
	rec.RecordValidationFailure("teams")
	rec.RecordEmptyResult("fixtures")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected scrape to succeed, got %d", rr.Code)
	}
	body := rr.Body.String()
	for _, name := range []string{"upstream_attempts_total", "upstream_errors_total", "validation_failures_total", "empty_results_total"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in scrape output", name)
		}
	}
}

func TestSetupPropagatesReaderErrors(t *testing.T) {
	orig := promReaderFactory
	defer func() { promReaderFactory = orig }()
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry failure")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected reader error to propagate")
	}
}

func TestSetupPropagatesInstrumentErrors(t *testing.T) {
	orig := instrumentFactory
	defer func() { instrumentFactory = orig }()
	instrumentFactory = func(metric.MeterProvider) (*otelInstruments, error) {
		return nil, errors.New("instrument failure")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected instrument error to propagate")
	}
}
