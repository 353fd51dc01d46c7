package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/gen/ent"
	"github.com/joseph-ayodele/research-agent/gen/ent/checkpoint"
	"github.com/joseph-ayodele/research-agent/internal/common"
	"github.com/joseph-ayodele/research-agent/internal/engine"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// EntCheckpointStore persists checkpoints through Ent, one row per job,
// replaced on every save. It satisfies engine.CheckpointStore so suspended
// jobs survive a process restart.
type EntCheckpointStore struct {
	client *ent.Client
	log    *slog.Logger
}

func NewEntCheckpointStore(client *ent.Client, logger *slog.Logger) *EntCheckpointStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntCheckpointStore{client: client, log: logger}
}

func (s *EntCheckpointStore) Save(ctx context.Context, cp engine.Checkpoint) error {
	jid, err := uuid.Parse(cp.JobID)
	if err != nil {
		return common.InvalidArgumentError("malformed job id " + cp.JobID)
	}
	blob, err := json.Marshal(cp.State)
	if err != nil {
		return common.WrapError(err, "marshal pipeline state")
	}

	n, err := s.client.Checkpoint.Update().
		Where(checkpoint.JobID(jid)).
		SetPosition(string(cp.Position)).
		SetState(blob).
		Save(ctx)
	if err != nil {
		return common.WrapError(err, "update checkpoint")
	}
	if n > 0 {
		return nil
	}

	_, err = s.client.Checkpoint.Create().
		SetJobID(jid).
		SetPosition(string(cp.Position)).
		SetState(blob).
		Save(ctx)
	if err != nil {
		return common.WrapError(err, "create checkpoint")
	}
	return nil
}

func (s *EntCheckpointStore) Load(ctx context.Context, jobID string) (engine.Checkpoint, error) {
	jid, err := uuid.Parse(jobID)
	if err != nil {
		return engine.Checkpoint{}, common.InvalidArgumentError("malformed job id " + jobID)
	}

	row, err := s.client.Checkpoint.Query().
		Where(checkpoint.JobID(jid)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return engine.Checkpoint{}, common.NotFoundError("no checkpoint for job " + jobID)
		}
		return engine.Checkpoint{}, common.WrapError(err, "load checkpoint")
	}

	var st state.PipelineState
	if err := json.Unmarshal(row.State, &st); err != nil {
		return engine.Checkpoint{}, common.WrapError(err, "unmarshal pipeline state")
	}
	return engine.Checkpoint{
		JobID:    jobID,
		Position: constants.StageID(row.Position),
		State:    st,
	}, nil
}

func (s *EntCheckpointStore) Delete(ctx context.Context, jobID string) error {
	jid, err := uuid.Parse(jobID)
	if err != nil {
		return common.InvalidArgumentError("malformed job id " + jobID)
	}
	_, err = s.client.Checkpoint.Delete().
		Where(checkpoint.JobID(jid)).
		Exec(ctx)
	if err != nil {
		return common.WrapError(err, "delete checkpoint")
	}
	return nil
}
