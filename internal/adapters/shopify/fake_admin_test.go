package shopify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"delivery-profile-assigner/internal/config"
)

type recordedRequest struct {
	Path      string
	Token     string
	Query     string
	Variables map[string]any
}

// fakeAdmin answers every POST with the next scripted body.
type fakeAdmin struct {
	t         *testing.T
	mu        sync.Mutex
	responses []fakeResponse
	requests  []recordedRequest
}

type fakeResponse struct {
	status int
	header map[string]string
	body   string
}

func newFakeAdmin(t *testing.T, responses ...fakeResponse) (*fakeAdmin, *Client) {
	t.Helper()
	fake := &fakeAdmin{t: t, responses: responses}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client := NewClient(config.ShopifyConfig{
		ShopDomain: srv.URL,
		Token:      "shpat_test",
		APIVer:     "2025-07",
	}, srv.Client(), nil)
	return fake, client
}

func ok(body string) fakeResponse {
	return fakeResponse{status: http.StatusOK, body: body}
}

func (f *fakeAdmin) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.Method != http.MethodPost {
		f.t.Errorf("unexpected method %s", r.Method)
	}
	if ct := r.Header.Get("Content-Type"); ct != "application/json" {
		f.t.Errorf("unexpected content type %q", ct)
	}
	var payload struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		f.t.Errorf("decode request: %v", err)
	}
	f.requests = append(f.requests, recordedRequest{
		Path:      r.URL.Path,
		Token:     r.Header.Get("X-Shopify-Access-Token"),
		Query:     payload.Query,
		Variables: payload.Variables,
	})

	if len(f.responses) == 0 {
		f.t.Errorf("unexpected request #%d: %s", len(f.requests), firstLine(payload.Query))
		http.Error(w, "no scripted response", http.StatusInternalServerError)
		return
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	for k, v := range resp.header {
		w.Header().Set(k, v)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}

func (f *fakeAdmin) Requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
