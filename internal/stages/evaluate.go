package stages

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/llm"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// fallbackScore is used when the evaluation call or its response is unusable:
// above the quality threshold so the draft escalates to human review instead
// of looping on a broken evaluator.
const fallbackScore = 75.0

// Evaluate scores the draft 0-100 across four dimensions and advances the
// write iteration counter. Router B reads the score to decide between
// review and another draft pass.
type Evaluate struct {
	gen llm.Generator
	log *slog.Logger
}

func NewEvaluate(gen llm.Generator, logger *slog.Logger) *Evaluate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluate{gen: gen, log: logger}
}

func (e *Evaluate) ID() constants.StageID { return constants.StageEvaluate }

func (e *Evaluate) Run(ctx context.Context, st state.PipelineState) (state.Delta, error) {
	score, feedback := e.evaluate(ctx, st)
	next := st.WriteIterations + 1

	e.log.Info("stage.evaluate.ok",
		"score", score,
		"threshold", constants.QualityThreshold,
		"write_iteration", next,
	)

	return state.Delta{
		QualityScore:    state.Float(score),
		QualityFeedback: state.Str(feedback),
		WriteIterations: state.Int(next),
	}, nil
}

func (e *Evaluate) evaluate(ctx context.Context, st state.PipelineState) (float64, string) {
	out, err := e.gen.Generate(ctx, evaluatePrompt(st), tempEvaluate)
	if err != nil {
		e.log.Warn("stage.evaluate.generate_failed", "error", err)
		return fallbackScore, "quality check error, escalating to review"
	}

	raw, err := llm.ExtractJSON(out)
	if err != nil {
		e.log.Warn("stage.evaluate.unparseable", "error", err)
		return fallbackScore, "quality check error, escalating to review"
	}
	if err := llm.ValidateJSONAgainstSchema(llm.EvaluateSchema(), raw); err != nil {
		e.log.Warn("stage.evaluate.schema_mismatch", "error", err)
		return fallbackScore, "quality check error, escalating to review"
	}

	var parsed struct {
		TotalScore float64 `json:"total_score"`
		Feedback   string  `json:"feedback"`
	}
	if err := llm.ExtractInto(out, &parsed); err != nil {
		return fallbackScore, "quality check error, escalating to review"
	}
	return parsed.TotalScore, parsed.Feedback
}
