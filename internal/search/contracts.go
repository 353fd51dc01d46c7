package search

import "context"

// Result is one ranked snippet from the web-search backend.
type Result struct {
	Title          string  `json:"title"`
	Snippet        string  `json:"snippet"`
	URL            string  `json:"url"`
	RelevanceScore float64 `json:"relevance_score"`
}

// Client is the web-search boundary the search stage depends on. Search
// returns an empty slice on backend failure; errors never cross this boundary.
type Client interface {
	Search(ctx context.Context, query string, maxResults int) []Result
}

// ClientFunc adapts a function to the Client interface.
type ClientFunc func(ctx context.Context, query string, maxResults int) []Result

func (f ClientFunc) Search(ctx context.Context, query string, maxResults int) []Result {
	return f(ctx, query, maxResults)
}
