package stages

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/export"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// Publish renders the approved article to the requested format. Format-level
// fallbacks live in the exporter; an error here means the file could not be
// written at all, which fails the job.
type Publish struct {
	exporter export.Exporter
	log      *slog.Logger
}

func NewPublish(exporter export.Exporter, logger *slog.Logger) *Publish {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publish{exporter: exporter, log: logger}
}

func (p *Publish) ID() constants.StageID { return constants.StagePublish }

func (p *Publish) Run(ctx context.Context, st state.PipelineState) (state.Delta, error) {
	path, err := p.exporter.Export(ctx, st.FinalArticle, st.Sources, st.ExportFormat, st.Query)
	if err != nil {
		return state.Delta{}, err
	}

	if lw, ok := p.exporter.(export.SourceLogWriter); ok {
		if _, err := lw.WriteSourceLog(st.GradedResults, path); err != nil {
			// The article made it out; a failed audit log is not worth
			// failing the job over.
			p.log.Warn("stage.publish.source_log_failed", "error", err)
		}
	}

	p.log.Info("stage.publish.ok", "path", path, "format", st.ExportFormat)

	return state.Delta{ExportPath: state.Str(path)}, nil
}
