package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/common"
	"github.com/joseph-ayodele/research-agent/internal/stages"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// OutcomeKind tags what one advance step produced.
type OutcomeKind int

const (
	// StageDone: a stage ran, its delta was applied and checkpointed.
	StageDone OutcomeKind = iota
	// Suspended: the pipeline is parked at human review awaiting a decision.
	Suspended
	// Finished: the terminal node was reached; State holds the final state.
	Finished
)

// Outcome is the result of one Step or Resume call.
type Outcome struct {
	Kind  OutcomeKind
	Stage constants.StageID
	Delta state.Delta
	// Payload is set when Kind is Suspended.
	Payload stages.ReviewPayload
	// State is the post-step state snapshot, final when Kind is Finished.
	State state.PipelineState
}

// Engine drives one job at a time through the stage graph, one stage per
// Step call, committing a checkpoint after every applied delta. The graph and
// the stage set are immutable after construction, so a single Engine is
// shared safely across concurrent jobs.
type Engine struct {
	stages       map[constants.StageID]stages.Stage
	store        CheckpointStore
	stageTimeout time.Duration
	log          *slog.Logger
}

func New(stageSet map[constants.StageID]stages.Stage, store CheckpointStore, stageTimeout time.Duration, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		stages:       stageSet,
		store:        store,
		stageTimeout: stageTimeout,
		log:          logger,
	}
}

// Start seeds the checkpoint for a fresh job at the first stage. It runs
// nothing; the driver calls Step to make progress.
func (e *Engine) Start(ctx context.Context, jobID string, st state.PipelineState) error {
	return e.store.Save(ctx, Checkpoint{
		JobID:    jobID,
		Position: constants.StageDecompose,
		State:    st,
	})
}

// Step advances the job by exactly one stage. Position review suspends
// without running anything; position end finishes. A stage error leaves the
// checkpoint untouched so the failed stage's partial work is never merged.
func (e *Engine) Step(ctx context.Context, jobID string) (Outcome, error) {
	cp, err := e.store.Load(ctx, jobID)
	if err != nil {
		return Outcome{}, err
	}

	switch cp.Position {
	case constants.StageEnd:
		return Outcome{Kind: Finished, Stage: constants.StageEnd, State: cp.State}, nil
	case constants.StageReview:
		e.log.Info("engine.suspend", "job_id", jobID, "score", cp.State.QualityScore)
		return Outcome{
			Kind:    Suspended,
			Stage:   constants.StageReview,
			Payload: stages.BuildReviewPayload(cp.State),
			State:   cp.State,
		}, nil
	}

	stage, ok := e.stages[cp.Position]
	if !ok {
		return Outcome{}, common.InternalErrorf("no stage registered for position %q", cp.Position)
	}

	runCtx := ctx
	if e.stageTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.stageTimeout)
		defer cancel()
	}

	started := time.Now()
	delta, err := stage.Run(runCtx, cp.State)
	if err != nil {
		e.log.Error("engine.stage_failed", "job_id", jobID, "stage", cp.Position, "error", err)
		return Outcome{}, common.WrapError(err, "stage "+string(cp.Position)+" failed")
	}

	cp.State.Apply(delta)
	next := nextStage(cp.Position, cp.State)

	e.log.Info("engine.stage_done",
		"job_id", jobID,
		"stage", cp.Position,
		"next", next,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	out := Outcome{Kind: StageDone, Stage: cp.Position, Delta: delta, State: cp.State}
	cp.Position = next
	if err := e.store.Save(ctx, cp); err != nil {
		return Outcome{}, common.WrapError(err, "save checkpoint")
	}
	return out, nil
}

// Resume splices the human decision into the parked checkpoint and routes
// past the review stage. The review stage itself never re-runs; resume is
// load continuation, overwrite the two human fields, consult the router.
// On approve the draft is promoted to the final article. Returns the delta
// applied at the review position so callers can report it like a stage step.
func (e *Engine) Resume(ctx context.Context, jobID string, decision constants.Decision, feedback string) (Outcome, error) {
	cp, err := e.store.Load(ctx, jobID)
	if err != nil {
		return Outcome{}, err
	}
	if cp.Position != constants.StageReview {
		return Outcome{}, common.ConflictErrorf("job %s is not awaiting review (position %q)", jobID, cp.Position)
	}

	delta := state.Delta{
		HumanDecision: state.DecisionOf(decision),
		HumanFeedback: state.Str(feedback),
	}
	if decision == constants.DecisionApprove {
		delta.FinalArticle = state.Str(cp.State.ArticleDraft)
	}
	cp.State.Apply(delta)

	next := routeAfterReview(cp.State)
	e.log.Info("engine.resume", "job_id", jobID, "decision", decision, "next", next)

	out := Outcome{Kind: StageDone, Stage: constants.StageReview, Delta: delta, State: cp.State}
	cp.Position = next
	if err := e.store.Save(ctx, cp); err != nil {
		return Outcome{}, common.WrapError(err, "save checkpoint")
	}
	return out, nil
}

// Position reports where the job's checkpoint currently points.
func (e *Engine) Position(ctx context.Context, jobID string) (constants.StageID, error) {
	cp, err := e.store.Load(ctx, jobID)
	if err != nil {
		return "", err
	}
	return cp.Position, nil
}

// Discard drops the job's checkpoint, for explicit job deletion.
func (e *Engine) Discard(ctx context.Context, jobID string) error {
	return e.store.Delete(ctx, jobID)
}
