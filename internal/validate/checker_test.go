package validate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSourceChecker_Check(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private\n"))
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/gone":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	checker := NewSourceChecker(5*time.Second, 4)
	results := checker.Check(context.Background(), []string{
		server.URL + "/ok",
		server.URL + "/gone",
		server.URL + "/private/page",
	})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if !results[0].IsAccessible || results[0].StatusCode != http.StatusOK {
		t.Errorf("expected /ok accessible, got %+v", results[0])
	}
	if results[1].IsAccessible {
		t.Errorf("expected /gone inaccessible, got %+v", results[1])
	}
	if !results[2].Disallowed {
		t.Errorf("expected /private disallowed by robots.txt, got %+v", results[2])
	}
}

func TestSourceChecker_CheckEmpty(t *testing.T) {
	checker := NewSourceChecker(time.Second, 2)
	results := checker.Check(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestSourceChecker_UnreachableHost(t *testing.T) {
	checker := NewSourceChecker(500*time.Millisecond, 2)
	results := checker.Check(context.Background(), []string{"http://127.0.0.1:1/x"})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].IsAccessible || results[0].Error == "" {
		t.Errorf("expected inaccessible with error, got %+v", results[0])
	}
}
