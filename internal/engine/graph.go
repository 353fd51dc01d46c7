package engine

import (
	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// edge is one outgoing transition: either a fixed successor or a router
// consulted with the post-stage state.
type edge struct {
	to    constants.StageID
	route func(state.PipelineState) constants.StageID
}

func (e edge) next(st state.PipelineState) constants.StageID {
	if e.route != nil {
		return e.route(st)
	}
	return e.to
}

// graph is the closed transition table. Every executable stage has exactly
// one entry; StageEnd has none because nothing runs after it.
var graph = map[constants.StageID]edge{
	constants.StageDecompose:  {to: constants.StageSearch},
	constants.StageSearch:     {to: constants.StageGrade},
	constants.StageGrade:      {route: routeAfterGrade},
	constants.StageRewrite:    {to: constants.StageSearch},
	constants.StageSynthesize: {to: constants.StageDraft},
	constants.StageDraft:      {to: constants.StageEvaluate},
	constants.StageEvaluate:   {route: routeAfterEvaluate},
	constants.StageReview:     {route: routeAfterReview},
	constants.StagePublish:    {to: constants.StageEnd},
}

// nextStage resolves the successor of "from" given the state after it ran.
func nextStage(from constants.StageID, st state.PipelineState) constants.StageID {
	e, ok := graph[from]
	if !ok {
		return constants.StageEnd
	}
	return e.next(st)
}
