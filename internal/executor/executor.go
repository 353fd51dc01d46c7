package executor

import (
	"context"
	"log/slog"
	"sync"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/common"
	"github.com/joseph-ayodele/research-agent/internal/engine"
	"github.com/joseph-ayodele/research-agent/internal/registry"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// Archiver mirrors job snapshots to durable storage at lifecycle boundaries.
type Archiver interface {
	Record(ctx context.Context, j registry.Job) error
}

// Executor spawns one driver per job-advance request. A driver marks the job
// processing, steps the engine until it suspends, finishes, or fails, and
// translates each step into registry updates and broadcast events. Drivers
// for different jobs are independent goroutines; within a job, stages run
// strictly in sequence.
type Executor struct {
	engine  *engine.Engine
	reg     *registry.Registry
	bc      *registry.Broadcaster
	archive Archiver
	log     *slog.Logger

	// base is the lifetime context for drivers; request contexts must not
	// cancel a driver that outlives the request.
	base  context.Context
	queue *DriverQueue
	wg    sync.WaitGroup
}

func New(base context.Context, eng *engine.Engine, reg *registry.Registry, bc *registry.Broadcaster, logger *slog.Logger, opts ...QueueOption) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	x := &Executor{engine: eng, reg: reg, bc: bc, log: logger, base: base}
	x.queue = NewDriverQueue(func(jobID string) {
		defer x.wg.Done()
		x.drive(x.base, jobID)
	}, logger, opts...)
	return x
}

// WithArchive enables durable job mirroring. Archive failures are logged,
// never propagated: the in-memory registry remains authoritative.
func (x *Executor) WithArchive(a Archiver) *Executor {
	x.archive = a
	return x
}

func (x *Executor) archiveSnapshot(ctx context.Context, jobID string) {
	if x.archive == nil {
		return
	}
	job, err := x.reg.Get(jobID)
	if err != nil {
		return
	}
	if err := x.archive.Record(ctx, job); err != nil {
		x.log.Error("executor.archive_failed", "job_id", jobID, "error", err)
	}
}

// Submit creates a job for the request, seeds its checkpoint, and launches a
// driver. Returns the created job snapshot immediately; progress flows
// through the registry and broadcaster.
func (x *Executor) Submit(ctx context.Context, req state.Request) (registry.Job, error) {
	job := x.reg.Create(req)
	if err := x.engine.Start(ctx, job.ID, job.State); err != nil {
		_ = x.reg.SetError(job.ID, err.Error())
		return registry.Job{}, common.WrapError(err, "seed checkpoint")
	}
	x.archiveSnapshot(ctx, job.ID)
	x.launch(job.ID)
	return job, nil
}

// Resume feeds the human decision into a job parked at review and launches a
// driver to continue it. Fails with a conflict if the job is not awaiting
// review; no state changes in that case.
func (x *Executor) Resume(ctx context.Context, jobID string, decision constants.Decision, feedback string) error {
	// Claim the parked job atomically so two racing resumes cannot both
	// drive it; the losers see the claimed status and get a conflict.
	if err := x.reg.Transition(jobID, constants.JobStatusHITLReview, constants.JobStatusProcessing); err != nil {
		return err
	}

	out, err := x.engine.Resume(ctx, jobID, decision, feedback)
	if err != nil {
		if rerr := x.reg.Transition(jobID, constants.JobStatusProcessing, constants.JobStatusHITLReview); rerr != nil {
			x.log.Error("executor.unclaim_failed", "job_id", jobID, "error", rerr)
		}
		return err
	}
	if err := x.reg.ApplyDelta(jobID, out.Stage, out.Delta); err != nil {
		return err
	}
	x.bc.Publish(registry.Event{
		Type:   registry.EventNodeComplete,
		JobID:  jobID,
		Stage:  out.Stage,
		Fields: out.Delta.Fields(),
	})

	x.launch(jobID)
	return nil
}

// Wait blocks until every enqueued advance has finished. For tests and
// drain-before-exit paths that keep the queue alive.
func (x *Executor) Wait() {
	x.wg.Wait()
}

// Shutdown stops accepting new advances and drains the worker pool.
func (x *Executor) Shutdown(ctx context.Context) {
	x.queue.Shutdown(ctx)
}

func (x *Executor) launch(jobID string) {
	x.wg.Add(1)
	if !x.queue.Enqueue(jobID) {
		x.wg.Done()
	}
}

func (x *Executor) drive(ctx context.Context, jobID string) {
	ctx = common.WithJobID(ctx, jobID)

	if err := x.reg.SetStatus(jobID, constants.JobStatusProcessing); err != nil {
		x.log.Error("executor.start_rejected", "job_id", jobID, "error", err)
		return
	}
	x.bc.Publish(registry.Event{
		Type:    registry.EventStatusUpdate,
		JobID:   jobID,
		Status:  constants.JobStatusProcessing,
		Message: "pipeline running",
	})

	for {
		out, err := x.engine.Step(ctx, jobID)
		if err != nil {
			x.fail(jobID, err)
			return
		}

		switch out.Kind {
		case engine.StageDone:
			if err := x.reg.ApplyDelta(jobID, out.Stage, out.Delta); err != nil {
				x.fail(jobID, err)
				return
			}
			x.bc.Publish(registry.Event{
				Type:   registry.EventNodeComplete,
				JobID:  jobID,
				Stage:  out.Stage,
				Fields: out.Delta.Fields(),
			})

		case engine.Suspended:
			if err := x.reg.SetStatus(jobID, constants.JobStatusHITLReview); err != nil {
				x.fail(jobID, err)
				return
			}
			x.bc.Publish(registry.Event{
				Type:    registry.EventHITLCheckpoint,
				JobID:   jobID,
				Stage:   out.Stage,
				Draft:   out.Payload.ArticleDraft,
				Score:   out.Payload.QualityScore,
				Sources: out.Payload.Sources,
			})
			x.archiveSnapshot(ctx, jobID)
			x.log.Info("executor.suspended", "job_id", jobID)
			return

		case engine.Finished:
			res := registry.Result{
				FinalArticle: out.State.FinalArticle,
				ExportPath:   out.State.ExportPath,
				Sources:      out.State.Sources,
				QualityScore: out.State.QualityScore,
			}
			if err := x.reg.SetResult(jobID, res); err != nil {
				x.fail(jobID, err)
				return
			}
			x.bc.Publish(registry.Event{
				Type:    registry.EventStatusUpdate,
				JobID:   jobID,
				Status:  constants.JobStatusCompleted,
				Message: "article published",
			})
			x.archiveSnapshot(ctx, jobID)
			x.log.Info("executor.finished", "job_id", jobID, "export_path", res.ExportPath)
			return
		}
	}
}

// fail records the terminal failure and tells everyone listening. The driver
// is the only component allowed to translate stage errors into job failure.
func (x *Executor) fail(jobID string, cause error) {
	x.log.Error("executor.job_failed", "job_id", jobID, "error", cause)
	if err := x.reg.SetError(jobID, cause.Error()); err != nil {
		x.log.Error("executor.record_failure", "job_id", jobID, "error", err)
	}
	x.bc.Publish(registry.Event{
		Type:    registry.EventError,
		JobID:   jobID,
		Message: cause.Error(),
	})
	x.bc.Publish(registry.Event{
		Type:    registry.EventStatusUpdate,
		JobID:   jobID,
		Status:  constants.JobStatusFailed,
		Message: cause.Error(),
	})
	x.archiveSnapshot(x.base, jobID)
}
