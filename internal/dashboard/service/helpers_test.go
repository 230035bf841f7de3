package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"golang-stock-dashboard/internal/dashboard/config"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/pkg/logger"
)

const twoStocks = `[
	{"id":1,"symbol":"AAPL","name":"Apple Inc.","sector":"Technology","industry":"Consumer Electronics","exchange":"NASDAQ","is_active":true},
	{"id":2,"symbol":"XOM","name":"Exxon Mobil","sector":null,"industry":null,"exchange":null,"is_active":false}
]`

type reply struct {
	status int
	body   string
}

type call struct {
	method string
	path   string
	query  string
	body   string
}

// fakeBackend answers "METHOD /path" keys from a fixed table and records
// every request it receives.
type fakeBackend struct {
	mu     sync.Mutex
	routes map[string]reply
	calls  []call
	cfg    config.Backend
}

func newFakeBackend(t *testing.T, routes map[string]reply) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{routes: routes}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		fb.mu.Lock()
		fb.calls = append(fb.calls, call{r.Method, r.URL.EscapedPath(), r.URL.RawQuery, string(b)})
		rep, ok := fb.routes[r.Method+" "+r.URL.EscapedPath()]
		fb.mu.Unlock()

		if !ok {
			rep = reply{http.StatusNotFound, `{"detail":"Not Found"}`}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rep.status)
		_, _ = io.WriteString(w, rep.body)
	}))
	t.Cleanup(srv.Close)

	fb.cfg = config.Backend{
		BaseURL:    srv.URL,
		APIPrefix:  "/api/v1",
		HealthPath: "/health",
		Timeout:    2 * time.Second,
	}
	return fb
}

func (fb *fakeBackend) repository() repository.BackendRepository {
	return repository.NewBackendRepository(repository.NewGateway(fb.cfg, logger.NewNop()))
}

func (fb *fakeBackend) find(method, path string) []call {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	var out []call
	for _, c := range fb.calls {
		if c.method == method && c.path == path {
			out = append(out, c)
		}
	}
	return out
}

func (fb *fakeBackend) count() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return len(fb.calls)
}

// unreachableBackend points at a server that has already been shut down.
func unreachableBackend(t *testing.T) config.Backend {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	return config.Backend{BaseURL: srv.URL, APIPrefix: "/api/v1", HealthPath: "/health", Timeout: time.Second}
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
}
