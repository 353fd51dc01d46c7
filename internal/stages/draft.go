package stages

import (
	"context"
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/llm"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// Draft writes the article from the research notes. Reviewer feedback (after
// an edit decision) is folded into the prompt and then cleared so a later
// pass does not re-apply stale feedback.
type Draft struct {
	gen llm.Generator
	log *slog.Logger
}

func NewDraft(gen llm.Generator, logger *slog.Logger) *Draft {
	if logger == nil {
		logger = slog.Default()
	}
	return &Draft{gen: gen, log: logger}
}

func (d *Draft) ID() constants.StageID { return constants.StageDraft }

func (d *Draft) Run(ctx context.Context, st state.PipelineState) (state.Delta, error) {
	article, err := d.gen.Generate(ctx, draftPrompt(st), tempDraft)
	if err != nil {
		return state.Delta{}, err
	}

	d.log.Info("stage.draft.ok",
		"approx_words", len(strings.Fields(article)),
		"target_words", st.WordCount,
		"had_feedback", st.HumanFeedback != "",
	)

	return state.Delta{
		ArticleDraft:  state.Str(article),
		HumanFeedback: state.Str(""),
	}, nil
}
