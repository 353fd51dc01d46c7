package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/research-agent/gen/ent"
	"github.com/joseph-ayodele/research-agent/gen/ent/job"
	"github.com/joseph-ayodele/research-agent/internal/common"
	"github.com/joseph-ayodele/research-agent/internal/registry"
)

// JobArchive mirrors registry job records into the database so status and
// results outlive the process. Record is an upsert keyed by job id; the
// in-memory registry stays the source of truth while the process lives.
type JobArchive struct {
	client *ent.Client
	log    *slog.Logger
}

func NewJobArchive(client *ent.Client, logger *slog.Logger) *JobArchive {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobArchive{client: client, log: logger}
}

func (a *JobArchive) Record(ctx context.Context, j registry.Job) error {
	jid, err := uuid.Parse(j.ID)
	if err != nil {
		return common.InvalidArgumentError("malformed job id " + j.ID)
	}

	var result json.RawMessage
	if j.Result != nil {
		result, err = json.Marshal(j.Result)
		if err != nil {
			return common.WrapError(err, "marshal result")
		}
	}

	upd := a.client.Job.Update().
		Where(job.ID(jid)).
		SetStatus(string(j.Status)).
		SetCurrentStage(string(j.CurrentStage))
	if result != nil {
		upd.SetResult(result)
	}
	if j.Error != "" {
		upd.SetErrorMessage(j.Error)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return common.WrapError(err, "update job record")
	}
	if n > 0 {
		return nil
	}

	create := a.client.Job.Create().
		SetID(jid).
		SetQuery(j.Request.Query).
		SetExportFormat(string(j.Request.ExportFormat)).
		SetTone(string(j.Request.Tone)).
		SetWordCount(j.Request.WordCount).
		SetStatus(string(j.Status)).
		SetCurrentStage(string(j.CurrentStage))
	if result != nil {
		create.SetResult(result)
	}
	if j.Error != "" {
		create.SetErrorMessage(j.Error)
	}
	if _, err := create.Save(ctx); err != nil {
		return common.WrapError(err, "create job record")
	}
	return nil
}

// Delete removes the archived row; missing rows are not an error, the
// archive only mirrors what the registry knew.
func (a *JobArchive) Delete(ctx context.Context, jobID string) error {
	jid, err := uuid.Parse(jobID)
	if err != nil {
		return common.InvalidArgumentError("malformed job id " + jobID)
	}
	_, err = a.client.Job.Delete().Where(job.ID(jid)).Exec(ctx)
	if err != nil {
		return common.WrapError(err, "delete job record")
	}
	return nil
}
