package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTavily_Search_MapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req["query"] != "perovskite stability" {
			t.Errorf("query not forwarded: %v", req["query"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"title": "Paper A", "content": strings.Repeat("x", 600), "url": "https://a.test", "score": 0.91},
				{"title": "Paper B", "content": "short", "url": "https://b.test", "score": 0.42},
			},
		})
	}))
	defer srv.Close()

	c := NewTavily(TavilyConfig{APIKey: "k", BaseURL: srv.URL}, nil)
	got := c.Search(context.Background(), "perovskite stability", 5)

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if len(got[0].Snippet) != 500 {
		t.Fatalf("snippet not clipped to 500, got %d", len(got[0].Snippet))
	}
	if got[1].URL != "https://b.test" || got[1].RelevanceScore != 0.42 {
		t.Fatalf("unexpected mapping: %+v", got[1])
	}
}

func TestTavily_Search_ClipsSnippetOnRuneBoundary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"title": "t", "content": strings.Repeat("é", 600), "url": "https://u.test", "score": 0.5},
			},
		})
	}))
	defer srv.Close()

	c := NewTavily(TavilyConfig{APIKey: "k", BaseURL: srv.URL}, nil)
	got := c.Search(context.Background(), "q", 1)
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if !utf8.ValidString(got[0].Snippet) {
		t.Fatalf("clipped snippet is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(got[0].Snippet); n != 500 {
		t.Fatalf("snippet clipped to %d runes, want 500", n)
	}
}

func TestTavily_Search_CapsMaxResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		results := make([]map[string]any, 10)
		for i := range results {
			results[i] = map[string]any{"title": "t", "content": "c", "url": "https://u.test", "score": 0.5}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"results": results})
	}))
	defer srv.Close()

	c := NewTavily(TavilyConfig{APIKey: "k", BaseURL: srv.URL, MaxResults: 3}, nil)
	if got := c.Search(context.Background(), "q", 0); len(got) != 3 {
		t.Fatalf("expected cap at 3, got %d", len(got))
	}
}

func TestTavily_Search_EmptyOnBackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewTavily(TavilyConfig{APIKey: "k", BaseURL: srv.URL}, nil)
	if got := c.Search(context.Background(), "q", 5); got != nil {
		t.Fatalf("expected nil on failure, got %v", got)
	}
}

func TestTavily_Search_EmptyOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	c := NewTavily(TavilyConfig{APIKey: "k", BaseURL: srv.URL}, nil)
	if got := c.Search(context.Background(), "q", 5); got != nil {
		t.Fatalf("expected nil on malformed body, got %v", got)
	}
}
