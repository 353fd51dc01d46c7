package stages

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/search"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// Search runs the web-search backend once per sub-question and tags each
// result with the sub-question it answers. A backend failure for one
// sub-question leaves a gap, never an error: the grade stage and router A
// decide what to do with thin results.
type Search struct {
	client     search.Client
	maxResults int
	log        *slog.Logger
}

func NewSearch(client search.Client, maxResults int, logger *slog.Logger) *Search {
	if maxResults <= 0 {
		maxResults = 5
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Search{client: client, maxResults: maxResults, log: logger}
}

func (s *Search) ID() constants.StageID { return constants.StageSearch }

func (s *Search) Run(ctx context.Context, st state.PipelineState) (state.Delta, error) {
	var all []state.SearchResult
	for i, question := range st.SubQuestions {
		results := s.client.Search(ctx, question, s.maxResults)
		for _, r := range results {
			all = append(all, state.SearchResult{
				Title:            r.Title,
				Snippet:          r.Snippet,
				URL:              r.URL,
				RelevanceScore:   r.RelevanceScore,
				SubQuestion:      question,
				SubQuestionIndex: i,
			})
		}
		s.log.Debug("stage.search.sub_question", "index", i, "results", len(results))
	}
	s.log.Info("stage.search.ok", "sub_questions", len(st.SubQuestions), "total_results", len(all))

	return state.Delta{SearchResults: state.Results(all)}, nil
}
