package search

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/joseph-ayodele/research-agent/internal/llm"
)

const snippetLimit = 500

// TavilyConfig for the Tavily search API client.
type TavilyConfig struct {
	APIKey     string
	BaseURL    string // default https://api.tavily.com
	MaxResults int    // default 5
	Timeout    time.Duration
}

// Tavily implements Client against the Tavily search API.
type Tavily struct {
	cfg  TavilyConfig
	http *http.Client
	log  *slog.Logger
}

func NewTavily(cfg TavilyConfig, logger *slog.Logger) *Tavily {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.tavily.com"
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Tavily{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

// Search queries Tavily and returns up to maxResults ranked snippets.
// Any failure (transport, non-2xx, malformed body) logs and returns nil so
// the pipeline keeps moving with whatever the other sub-questions found.
func (t *Tavily) Search(ctx context.Context, query string, maxResults int) []Result {
	if maxResults <= 0 || maxResults > t.cfg.MaxResults {
		maxResults = t.cfg.MaxResults
	}

	body := map[string]any{
		"api_key":      t.cfg.APIKey,
		"query":        query,
		"search_depth": "advanced",
		"max_results":  maxResults,
	}

	endpoint := strings.TrimRight(t.cfg.BaseURL, "/") + "/search"
	raw, status, err := llm.SendJSON(ctx, t.http, endpoint, body, nil, t.log)
	if err != nil {
		t.log.Warn("search.tavily.failed", "query", query, "status", status, "error", err)
		return nil
	}

	var resp struct {
		Results []struct {
			Title   string  `json:"title"`
			Content string  `json:"content"`
			URL     string  `json:"url"`
			Score   float64 `json:"score"`
		} `json:"results"`
	}
	if err := llm.ExtractInto(string(raw), &resp); err != nil {
		t.log.Warn("search.tavily.malformed_response", "query", query, "error", err)
		return nil
	}

	out := make([]Result, 0, len(resp.Results))
	for _, r := range resp.Results {
		out = append(out, Result{
			Title:          r.Title,
			Snippet:        clipRunes(r.Content, snippetLimit),
			URL:            r.URL,
			RelevanceScore: r.Score,
		})
		if len(out) == maxResults {
			break
		}
	}

	t.log.Info("search.tavily.ok", "query", query, "results", len(out))
	return out
}

// clipRunes truncates on a rune boundary so a clipped snippet stays valid
// UTF-8.
func clipRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}
