package stages

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/llm"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// Synthesize condenses the accepted results into structured research notes
// and extracts the deduplicated source list in first-seen order.
type Synthesize struct {
	gen llm.Generator
	log *slog.Logger
}

func NewSynthesize(gen llm.Generator, logger *slog.Logger) *Synthesize {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesize{gen: gen, log: logger}
}

func (s *Synthesize) ID() constants.StageID { return constants.StageSynthesize }

func (s *Synthesize) Run(ctx context.Context, st state.PipelineState) (state.Delta, error) {
	sources := DedupSources(st.GradedResults)

	notes, err := s.gen.Generate(ctx, synthesizePrompt(st.GradedResults), tempSynthesize)
	if err != nil {
		// Notes are the foundation of everything downstream; there is no
		// safe default here.
		return state.Delta{}, err
	}

	s.log.Info("stage.synthesize.ok", "results", len(st.GradedResults), "sources", len(sources))

	return state.Delta{
		ResearchNotes: state.Str(notes),
		Sources:       state.Strings(sources),
	}, nil
}

// DedupSources collects the unique URLs of the graded results, preserving
// the order they were first seen.
func DedupSources(results []state.SearchResult) []string {
	seen := make(map[string]struct{}, len(results))
	var out []string
	for _, r := range results {
		if r.URL == "" {
			continue
		}
		if _, ok := seen[r.URL]; ok {
			continue
		}
		seen[r.URL] = struct{}{}
		out = append(out, r.URL)
	}
	return out
}
