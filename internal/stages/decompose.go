package stages

import (
	"context"
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/llm"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

const maxSubQuestions = 5

// Decompose breaks the user query into 3-5 focused sub-questions and zeroes
// both iteration counters (it is also the restart point after a reject).
type Decompose struct {
	gen llm.Generator
	log *slog.Logger
}

func NewDecompose(gen llm.Generator, logger *slog.Logger) *Decompose {
	if logger == nil {
		logger = slog.Default()
	}
	return &Decompose{gen: gen, log: logger}
}

func (d *Decompose) ID() constants.StageID { return constants.StageDecompose }

func (d *Decompose) Run(ctx context.Context, st state.PipelineState) (state.Delta, error) {
	out, err := d.gen.Generate(ctx, decomposePrompt(st.Query), tempDecompose)
	if err != nil {
		// No safe default for a dead generation backend this early.
		return state.Delta{}, err
	}

	subQuestions := parseSubQuestions(out)
	if len(subQuestions) == 0 {
		// Documented fallback: research the query verbatim.
		d.log.Warn("stage.decompose.fallback_to_query", "query", st.Query)
		subQuestions = []string{st.Query}
	}
	d.log.Info("stage.decompose.ok", "sub_questions", len(subQuestions))

	return state.Delta{
		SubQuestions:     state.Strings(subQuestions),
		SearchIterations: state.Int(0),
		WriteIterations:  state.Int(0),
	}, nil
}

// parseSubQuestions tries the structured shape first, then falls back to
// scanning the raw text for question-looking lines.
func parseSubQuestions(out string) []string {
	var parsed struct {
		SubQuestions []string `json:"sub_questions"`
	}
	if err := llm.ExtractInto(out, &parsed); err == nil {
		if raw, rerr := llm.ExtractJSON(out); rerr == nil {
			if verr := llm.ValidateJSONAgainstSchema(llm.DecomposeSchema(), raw); verr == nil {
				return clipQuestions(parsed.SubQuestions)
			}
		}
	}

	var qs []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && strings.Contains(line, "?") {
			qs = append(qs, line)
		}
	}
	return clipQuestions(qs)
}

func clipQuestions(qs []string) []string {
	out := make([]string, 0, maxSubQuestions)
	for _, q := range qs {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		out = append(out, q)
		if len(out) == maxSubQuestions {
			break
		}
	}
	return out
}
