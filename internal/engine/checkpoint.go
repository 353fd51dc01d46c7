package engine

import (
	"context"
	"sync"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/common"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// Checkpoint is the continuation record for one job: where the pipeline is
// and the fully-applied state at that point. It is replaced wholesale on each
// advance, never partially updated.
type Checkpoint struct {
	JobID    string
	Position constants.StageID
	State    state.PipelineState
}

// CheckpointStore persists one checkpoint per job id. Save replaces the
// previous record atomically; Load after a successful Save returns exactly
// what was saved.
type CheckpointStore interface {
	Save(ctx context.Context, cp Checkpoint) error
	Load(ctx context.Context, jobID string) (Checkpoint, error)
	Delete(ctx context.Context, jobID string) error
}

// MemoryStore keeps checkpoints in process memory. Suitable only for
// single-process deployments that tolerate losing suspended jobs on restart;
// durable deployments use the database-backed store instead.
type MemoryStore struct {
	mu  sync.RWMutex
	cps map[string]Checkpoint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cps: make(map[string]Checkpoint)}
}

func (m *MemoryStore) Save(_ context.Context, cp Checkpoint) error {
	cp.State = cp.State.Clone()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cps[cp.JobID] = cp
	return nil
}

func (m *MemoryStore) Load(_ context.Context, jobID string) (Checkpoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cp, ok := m.cps[jobID]
	if !ok {
		return Checkpoint{}, common.NotFoundError("no checkpoint for job " + jobID)
	}
	cp.State = cp.State.Clone()
	return cp, nil
}

func (m *MemoryStore) Delete(_ context.Context, jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cps, jobID)
	return nil
}
