package engine

import (
	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// Routers are the conditional edges of the graph: pure, total functions from
// state to the next stage id. Tie-break order is fixed: hard caps first, then
// "have usable output", then "need more work", else forward. Every router
// prefers forward progress, so no route can loop unbounded.

// routeAfterGrade picks between synthesize and rewrite. The search cap wins
// over everything; accepted results win over rejected sub-questions.
func routeAfterGrade(st state.PipelineState) constants.StageID {
	switch {
	case st.SearchIterations >= constants.MaxSearchIterations:
		return constants.StageSynthesize
	case len(st.GradedResults) > 0:
		return constants.StageSynthesize
	case len(st.RejectedQuestions) > 0:
		return constants.StageRewrite
	default:
		return constants.StageSynthesize
	}
}

// routeAfterEvaluate sends a passing or cap-escalated draft to human review,
// anything else back for another draft.
func routeAfterEvaluate(st state.PipelineState) constants.StageID {
	switch {
	case st.QualityScore >= constants.QualityThreshold:
		return constants.StageReview
	case st.WriteIterations >= constants.MaxWriteIterations:
		return constants.StageReview
	default:
		return constants.StageDraft
	}
}

// routeAfterReview dispatches on the human decision. Unset or unrecognized
// decisions take the approve branch so the router stays total.
func routeAfterReview(st state.PipelineState) constants.StageID {
	switch st.HumanDecision {
	case constants.DecisionEdit:
		return constants.StageDraft
	case constants.DecisionReject:
		return constants.StageDecompose
	default:
		return constants.StagePublish
	}
}
