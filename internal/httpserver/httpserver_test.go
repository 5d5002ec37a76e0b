package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"extensible-calendar/config"
	"extensible-calendar/internal/agenda/usecase"
	"extensible-calendar/internal/metric"
	"extensible-calendar/pkg/log"
)

func newTestServer(t *testing.T, rl config.RateLimitConfig) *HTTPServer {
	t.Helper()
	reg := prometheus.NewRegistry()
	metrics := metric.NewWithRegistry(reg, reg)
	l := log.NewNop()

	srv, err := New(l, Config{
		Logger:        l,
		Port:          8080,
		Mode:          gin.TestMode,
		Environment:   "test",
		Metrics:       metrics,
		RateLimit:     rl,
		AgendaUseCase: usecase.New(l, metrics, nil),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNewValidates(t *testing.T) {
	l := log.NewNop()
	tests := []struct {
		name string
		cfg  Config
	}{
		{"no mode", Config{Port: 8080}},
		{"no port", Config{Mode: gin.TestMode}},
		{"no metrics", Config{Port: 8080, Mode: gin.TestMode}},
		{"no use case", Config{Port: 8080, Mode: gin.TestMode, Metrics: metric.NewWithRegistry(prometheus.NewRegistry(), prometheus.NewRegistry())}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(l, tc.cfg); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, config.RateLimitConfig{})

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: status %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), ServiceName) {
			t.Errorf("%s: body %s missing service name", path, w.Body.String())
		}
	}
}

func TestReadyReportsCalendars(t *testing.T) {
	srv := newTestServer(t, config.RateLimitConfig{})
	h := srv.Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/calendars", strings.NewReader(`{"name":"work","timezone":"UTC"}`))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(httptest.NewRecorder(), req)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/calendars/work/use", nil))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("ready: status %d", w.Code)
	}
	for _, want := range []string{`"calendars":1`, `"current":"work"`, `"environment":"test"`} {
		if !strings.Contains(w.Body.String(), want) {
			t.Errorf("ready body %s missing %s", w.Body.String(), want)
		}
	}
}

func TestMetricsRouteCountsDomainRequests(t *testing.T) {
	srv := newTestServer(t, config.RateLimitConfig{})
	h := srv.Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/calendars", strings.NewReader(`{"name":"work","timezone":"UTC"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create calendar: status %d, body %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	for _, want := range []string{
		`calendar_operations_total{operation="create_calendar",result="ok"} 1`,
		`calendar_http_requests_total{method="POST",route="/api/v1/calendars",status="201"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestDomainRoutesAreRateLimited(t *testing.T) {
	srv := newTestServer(t, config.RateLimitConfig{Enabled: true, RequestsPerMin: 10})
	h := srv.Handler()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/calendars", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want 200 then 429", codes)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("health should not be rate limited, got %d", w.Code)
	}
}
