package books

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestLookup_NoAPIKey tests that a missing credential reports absent metadata.
func TestLookup_NoAPIKey(t *testing.T) {
	client := NewClient("", nil)
	if _, found := client.Lookup(context.Background(), "그리스인 조르바", ""); found {
		t.Error("expected not found without an API key")
	}
}

// TestLookup_Found tests query construction and field extraction.
func TestLookup_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/books/v1/volumes" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("q"); !strings.Contains(got, `intitle:"그리스인 조르바"`) || !strings.Contains(got, "inauthor:카잔차키스") {
			t.Errorf("unexpected query %q", got)
		}
		if q.Get("maxResults") != "1" {
			t.Errorf("expected maxResults=1, got %q", q.Get("maxResults"))
		}
		if q.Get("key") != "test-key" {
			t.Errorf("expected api key in query, got %q", q.Get("key"))
		}
		w.Write([]byte(`{"totalItems":1,"items":[{"volumeInfo":{
			"title":"그리스인 조르바",
			"authors":["니코스 카잔차키스"],
			"description":"자유인 조르바의 이야기",
			"categories":["Fiction"],
			"publishedDate":"1946",
			"pageCount":464}}]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.Client()).WithBaseURL(srv.URL)
	meta, found := client.Lookup(context.Background(), "그리스인 조르바", "카잔차키스")
	if !found {
		t.Fatal("expected metadata to be found")
	}
	if meta.Title != "그리스인 조르바" {
		t.Errorf("unexpected title %q", meta.Title)
	}
	if len(meta.Authors) != 1 || meta.Authors[0] != "니코스 카잔차키스" {
		t.Errorf("unexpected authors %v", meta.Authors)
	}
	if meta.PageCount != 464 {
		t.Errorf("unexpected page count %d", meta.PageCount)
	}
}

// TestLookup_MissingFieldsDefaulted tests zero-value defaults.
func TestLookup_MissingFieldsDefaulted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalItems":1,"items":[{"volumeInfo":{"title":"무제"}}]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.Client()).WithBaseURL(srv.URL)
	meta, found := client.Lookup(context.Background(), "무제", "")
	if !found {
		t.Fatal("expected metadata to be found")
	}
	if meta.Description != "" || len(meta.Categories) != 0 || meta.PageCount != 0 {
		t.Errorf("expected zero defaults, got %+v", meta)
	}
}

// TestLookup_EmptyResults tests absent metadata on zero matches.
func TestLookup_EmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalItems":0}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.Client()).WithBaseURL(srv.URL)
	if _, found := client.Lookup(context.Background(), "존재하지 않는 책", ""); found {
		t.Error("expected not found for empty result set")
	}
}

// TestLookup_NonOKStatus tests absent metadata on API rejection.
func TestLookup_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient("bad-key", srv.Client()).WithBaseURL(srv.URL)
	if _, found := client.Lookup(context.Background(), "그리스인 조르바", ""); found {
		t.Error("expected not found on 403")
	}
}

// TestLookup_TransportError tests absent metadata on network failure.
func TestLookup_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient("test-key", nil).WithBaseURL(srv.URL)
	if _, found := client.Lookup(context.Background(), "그리스인 조르바", ""); found {
		t.Error("expected not found on transport error")
	}
}
