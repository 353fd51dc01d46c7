package stages

import (
	"log/slog"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/export"
	"github.com/joseph-ayodele/research-agent/internal/llm"
	"github.com/joseph-ayodele/research-agent/internal/search"
)

// DefaultSet wires every executable stage against the given backends. The
// review stage has no entry: the engine suspends on it instead of running it.
func DefaultSet(gen llm.Generator, client search.Client, exp export.Exporter, maxResults int, logger *slog.Logger) map[constants.StageID]Stage {
	return map[constants.StageID]Stage{
		constants.StageDecompose:  NewDecompose(gen, logger),
		constants.StageSearch:     NewSearch(client, maxResults, logger),
		constants.StageGrade:      NewGrade(gen, logger),
		constants.StageRewrite:    NewRewrite(gen, logger),
		constants.StageSynthesize: NewSynthesize(gen, logger),
		constants.StageDraft:      NewDraft(gen, logger),
		constants.StageEvaluate:   NewEvaluate(gen, logger),
		constants.StagePublish:    NewPublish(exp, logger),
	}
}
