// Package stages implements the pipeline's processing stages. Each stage is a
// pure transformation of the current state into a partial Delta plus whatever
// external I/O it needs; it never mutates the state it was given.
package stages

import (
	"context"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// Stage is one node of the pipeline graph.
type Stage interface {
	ID() constants.StageID
	Run(ctx context.Context, st state.PipelineState) (state.Delta, error)
}

// ReviewPayload is what the suspending review stage presents to the human.
type ReviewPayload struct {
	ArticleDraft string   `json:"article_draft"`
	QualityScore float64  `json:"quality_score"`
	Sources      []string `json:"sources"`
}

// BuildReviewPayload snapshots the fields a reviewer needs to decide.
func BuildReviewPayload(st state.PipelineState) ReviewPayload {
	return ReviewPayload{
		ArticleDraft: st.ArticleDraft,
		QualityScore: st.QualityScore,
		Sources:      append([]string(nil), st.Sources...),
	}
}

// Generation temperatures per stage. Deterministic stages run cold, the
// creative ones warmer.
const (
	tempDecompose  = 0.2
	tempGrade      = 0.1
	tempRewrite    = 0.5
	tempSynthesize = 0.2
	tempDraft      = 0.7
	tempEvaluate   = 0.1
)
