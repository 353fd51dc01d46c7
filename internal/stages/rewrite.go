package stages

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/llm"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// Rewrite reformulates every sub-question in the rejected queue, bumps the
// search iteration counter, and clears the queue for the next pass. A failed
// rewrite keeps the original wording rather than dropping the question.
type Rewrite struct {
	gen llm.Generator
	log *slog.Logger
}

func NewRewrite(gen llm.Generator, logger *slog.Logger) *Rewrite {
	if logger == nil {
		logger = slog.Default()
	}
	return &Rewrite{gen: gen, log: logger}
}

func (r *Rewrite) ID() constants.StageID { return constants.StageRewrite }

func (r *Rewrite) Run(ctx context.Context, st state.PipelineState) (state.Delta, error) {
	// Router A should never send us here past the cap; guard anyway so a
	// mis-wired graph cannot loop forever.
	if st.SearchIterations >= constants.MaxSearchIterations {
		r.log.Warn("stage.rewrite.cap_reached", "iterations", st.SearchIterations)
		return state.Delta{
			RejectedQuestions: state.Ints(nil),
		}, nil
	}

	rewritten := append([]string(nil), st.SubQuestions...)
	for _, idx := range st.RejectedQuestions {
		if idx < 0 || idx >= len(rewritten) {
			r.log.Warn("stage.rewrite.index_out_of_range", "index", idx, "sub_questions", len(rewritten))
			continue
		}
		rewritten[idx] = r.rewriteOne(ctx, st.Query, rewritten[idx])
	}

	next := st.SearchIterations + 1
	r.log.Info("stage.rewrite.ok",
		"rewritten", len(st.RejectedQuestions),
		"iteration", next,
		"max_iterations", constants.MaxSearchIterations,
	)

	return state.Delta{
		SubQuestions:      state.Strings(rewritten),
		SearchIterations:  state.Int(next),
		RejectedQuestions: state.Ints(nil),
	}, nil
}

func (r *Rewrite) rewriteOne(ctx context.Context, topic, rejected string) string {
	out, err := r.gen.Generate(ctx, rewritePrompt(topic, rejected), tempRewrite)
	if err != nil {
		r.log.Warn("stage.rewrite.generate_failed", "query", rejected, "error", err)
		return rejected
	}

	raw, err := llm.ExtractJSON(out)
	if err != nil {
		r.log.Warn("stage.rewrite.unparseable", "query", rejected, "error", err)
		return rejected
	}
	if err := llm.ValidateJSONAgainstSchema(llm.RewriteSchema(), raw); err != nil {
		r.log.Warn("stage.rewrite.schema_mismatch", "query", rejected, "error", err)
		return rejected
	}

	var parsed struct {
		RewrittenQuery string `json:"rewritten_query"`
	}
	if err := llm.ExtractInto(out, &parsed); err != nil || parsed.RewrittenQuery == "" {
		r.log.Warn("stage.rewrite.unparseable", "query", rejected)
		return rejected
	}
	return parsed.RewrittenQuery
}
