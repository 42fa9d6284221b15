package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pwdeveloper/mad-spring-connect/middleware"
)

func TestAll_CollectsInArgumentOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `"}`))
	}))
	defer srv.Close()

	get := func(path string) middleware.Fetch {
		return func(ctx context.Context) (*http.Response, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+path, nil)
			if err != nil {
				return nil, err
			}
			return http.DefaultClient.Do(req)
		}
	}

	resps, err := middleware.All(context.Background(), get("/a"), get("/b"), get("/c"))
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	for i, want := range []string{"/a", "/b", "/c"} {
		body, perr := middleware.ParseJSON(middleware.CheckStatus(resps[i], nil))
		if perr != nil {
			t.Fatalf("resp %d: %v", i, perr)
		}
		m, ok := body.(map[string]any)
		if !ok || m["path"] != want {
			t.Fatalf("resp %d = %#v, want path %q", i, body, want)
		}
	}
}

func TestAll_FirstErrorWinsAndCancelsTheRest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ok := func(ctx context.Context) (*http.Response, error) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
		return http.DefaultClient.Do(req)
	}
	failing := func(ctx context.Context) (*http.Response, error) {
		return middleware.CheckStatus(fakeResponse(http.StatusBadGateway, ""), nil)
	}

	resps, err := middleware.All(context.Background(), ok, failing, ok)
	if err == nil {
		t.Fatalf("expected the gate failure to surface")
	}
	if resps != nil {
		t.Fatalf("failed gather should not hand out partial results")
	}
}

func TestAll_NoFetches(t *testing.T) {
	resps, err := middleware.All(context.Background())
	if err != nil {
		t.Fatalf("All(): %v", err)
	}
	if len(resps) != 0 {
		t.Fatalf("len = %d, want 0", len(resps))
	}
}
