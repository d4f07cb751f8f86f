package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// MockServer is an httptest server that records the requests it receives
type MockServer struct {
	*httptest.Server

	mu    sync.Mutex
	calls []string
}

// Calls returns the request URIs received so far
func (m *MockServer) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockServer) record(r *http.Request) {
	m.mu.Lock()
	m.calls = append(m.calls, fmt.Sprintf("%s %s", r.Method, r.URL.RequestURI()))
	m.mu.Unlock()
}

// NewCTSServer serves body as XML for any path under /library/. The
// server is closed when the test ends. Use URL+"/library/{urn}/cts-api-xml/"
// as the endpoint template.
func NewCTSServer(t *testing.T, body string) *MockServer {
	t.Helper()

	m := &MockServer{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.record(r)
		if !strings.HasPrefix(r.URL.Path, "/library/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(m.Close)
	return m
}

// NewDICESServer serves the two sample speech pages at /speeches/. The
// first page links to the second through its next field.
func NewDICESServer(t *testing.T) *MockServer {
	t.Helper()

	m := &MockServer{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.record(r)
		if r.URL.Path != "/speeches/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "2" {
			_, _ = w.Write([]byte(SampleDICESPage2))
			return
		}
		next := m.URL + "/speeches/?author_name=" + r.URL.Query().Get("author_name") + "&page=2"
		_, _ = w.Write([]byte(strings.ReplaceAll(SampleDICESPage1, "{next}", next)))
	}))
	t.Cleanup(m.Close)
	return m
}

// NewStatusServer answers every request with the given status code
func NewStatusServer(t *testing.T, code int) *MockServer {
	t.Helper()

	m := &MockServer{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.record(r)
		http.Error(w, http.StatusText(code), code)
	}))
	t.Cleanup(m.Close)
	return m
}
