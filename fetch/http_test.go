package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPFetchCaches(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("payload"))
	}))
	defer srv.Close()

	f, err := NewHTTP(WithHTTPURL(srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		data, err := f.Fetch(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "payload" {
			t.Errorf("fetch %d: got %q", i, data)
		}
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1", hits)
	}
}

func TestHTTPFetchErrorStatus(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f, err := NewHTTP(WithHTTPURL(srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected an error for a 404 response")
	} else if !strings.Contains(err.Error(), "404") {
		t.Errorf("error should carry the status, got %v", err)
	}
	// the error body must not be cached as content
	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected the retry to fail too")
	}
	if hits != 2 {
		t.Errorf("server hit %d times, want 2", hits)
	}
}
