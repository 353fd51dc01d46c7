package stages

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/llm"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// AcceptScore is the minimum grade for a result to count as usable.
const AcceptScore = 3

// defaultGrade is used when a single grading call fails; the result passes at
// the accept threshold rather than silently vanishing.
const defaultGrade = 3

// Grade scores every search result 1-5 for relevance and splits them into
// accepted results and sub-questions that came up empty.
type Grade struct {
	gen llm.Generator
	log *slog.Logger
}

func NewGrade(gen llm.Generator, logger *slog.Logger) *Grade {
	if logger == nil {
		logger = slog.Default()
	}
	return &Grade{gen: gen, log: logger}
}

func (g *Grade) ID() constants.StageID { return constants.StageGrade }

func (g *Grade) Run(ctx context.Context, st state.PipelineState) (state.Delta, error) {
	graded := make([]state.SearchResult, 0, len(st.SearchResults))
	acceptedByQuestion := make(map[int]int)

	for _, r := range st.SearchResults {
		score, reasoning := g.gradeOne(ctx, r)
		r.GradeScore = score
		r.GradeReasoning = reasoning
		if score >= AcceptScore {
			graded = append(graded, r)
			acceptedByQuestion[r.SubQuestionIndex]++
		}
	}

	// A sub-question with zero accepted results goes to the rewrite queue,
	// identified by index so duplicate question text cannot alias.
	var rejected []int
	for i := range st.SubQuestions {
		if acceptedByQuestion[i] == 0 {
			rejected = append(rejected, i)
		}
	}

	g.log.Info("stage.grade.ok",
		"total", len(st.SearchResults),
		"accepted", len(graded),
		"rejected_questions", len(rejected),
	)

	return state.Delta{
		GradedResults:     state.Results(graded),
		RejectedQuestions: state.Ints(rejected),
	}, nil
}

func (g *Grade) gradeOne(ctx context.Context, r state.SearchResult) (int, string) {
	out, err := g.gen.Generate(ctx, gradePrompt(r), tempGrade)
	if err != nil {
		g.log.Warn("stage.grade.generate_failed", "url", r.URL, "error", err)
		return defaultGrade, "default score due to grading error"
	}

	raw, err := llm.ExtractJSON(out)
	if err != nil {
		g.log.Warn("stage.grade.unparseable", "url", r.URL, "error", err)
		return defaultGrade, "default score due to grading error"
	}
	if err := llm.ValidateJSONAgainstSchema(llm.GradeSchema(), raw); err != nil {
		g.log.Warn("stage.grade.schema_mismatch", "url", r.URL, "error", err)
		return defaultGrade, "default score due to grading error"
	}

	var parsed struct {
		Score     int    `json:"score"`
		Reasoning string `json:"reasoning"`
	}
	if err := llm.ExtractInto(out, &parsed); err != nil {
		return defaultGrade, "default score due to grading error"
	}
	return parsed.Score, parsed.Reasoning
}
