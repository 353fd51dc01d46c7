package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/common"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// Result is the snapshot recorded when a job completes.
type Result struct {
	FinalArticle string   `json:"final_article"`
	ExportPath   string   `json:"export_path"`
	Sources      []string `json:"sources"`
	QualityScore float64  `json:"quality_score"`
}

// Job is one end-to-end pipeline execution. Owned exclusively by the
// Registry; callers only ever see snapshots.
type Job struct {
	ID           string
	Request      state.Request
	Status       constants.JobStatus
	CurrentStage constants.StageID
	State        state.PipelineState
	Result       *Result
	Error        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (j *Job) snapshot() Job {
	out := *j
	out.State = j.State.Clone()
	if j.Result != nil {
		r := *j.Result
		r.Sources = append([]string(nil), j.Result.Sources...)
		out.Result = &r
	}
	return out
}

// Registry is the concurrency core: the single owner of all job records.
// Every mutation goes through its lock and bumps the job's updated timestamp.
// Terminal statuses are absorbing: mutations on a completed or failed job are
// rejected, reads always succeed.
type Registry struct {
	mu   sync.RWMutex
	jobs map[string]*Job
	log  *slog.Logger
}

func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{jobs: make(map[string]*Job), log: logger}
}

// Create registers a new pending job for the request and returns its id.
func (r *Registry) Create(req state.Request) Job {
	now := time.Now().UTC()
	job := &Job{
		ID:           uuid.New().String(),
		Request:      req,
		Status:       constants.JobStatusPending,
		CurrentStage: constants.StageDecompose,
		State:        state.New(req),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r.mu.Lock()
	r.jobs[job.ID] = job
	r.mu.Unlock()

	r.log.Info("registry.job_created", "job_id", job.ID, "query", req.Query)
	return job.snapshot()
}

// Get returns a snapshot of the job, or NotFound.
func (r *Registry) Get(jobID string) (Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return Job{}, common.NotFoundError("job " + jobID + " not found")
	}
	return job.snapshot(), nil
}

// StatusView is the poll-facing projection of a job. The draft is exposed
// only while the job is parked at the human checkpoint; sources appear as
// soon as synthesis has produced them.
type StatusView struct {
	JobID        string
	Status       constants.JobStatus
	CurrentStage constants.StageID
	Progress     string
	Draft        string
	QualityScore float64
	Sources      []string
	Error        string
}

// Status returns the job's poll projection, or NotFound.
func (r *Registry) Status(jobID string) (StatusView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return StatusView{}, common.NotFoundError("job " + jobID + " not found")
	}
	view := StatusView{
		JobID:        job.ID,
		Status:       job.Status,
		CurrentStage: job.CurrentStage,
		Progress:     progress(job),
		QualityScore: job.State.QualityScore,
		Sources:      append([]string(nil), job.State.Sources...),
		Error:        job.Error,
	}
	if job.Status == constants.JobStatusHITLReview {
		view.Draft = job.State.ArticleDraft
	}
	return view, nil
}

// progress renders a one-line human-readable digest of how far the pipeline
// got, for status polls.
func progress(job *Job) string {
	st := job.State
	switch {
	case job.Status == constants.JobStatusPending:
		return "queued"
	case job.Status == constants.JobStatusFailed:
		return "failed: " + job.Error
	case job.Status == constants.JobStatusCompleted:
		return fmt.Sprintf("published to %s", st.ExportPath)
	case job.Status == constants.JobStatusHITLReview:
		return fmt.Sprintf("awaiting review, draft scored %.0f/100", st.QualityScore)
	case st.ArticleDraft != "":
		return fmt.Sprintf("drafting, iteration %d of %d", st.WriteIterations, constants.MaxWriteIterations)
	case len(st.SubQuestions) > 0:
		return fmt.Sprintf("researching %d sub-questions, %d results accepted", len(st.SubQuestions), len(st.GradedResults))
	default:
		return "starting"
	}
}

// Result returns the completed job's final artifact. Requesting it before
// the job completes is a conflict and returns no partial data.
func (r *Registry) Result(jobID string) (Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return Result{}, common.NotFoundError("job " + jobID + " not found")
	}
	if job.Status != constants.JobStatusCompleted || job.Result == nil {
		return Result{}, common.ConflictErrorf("job %s is %s, result requires %s", jobID, job.Status, constants.JobStatusCompleted)
	}
	res := *job.Result
	res.Sources = append([]string(nil), job.Result.Sources...)
	return res, nil
}

// SetStatus moves the job along its lifecycle. Transitions that would
// regress (including any mutation of a terminal job) are rejected with a
// conflict error and leave the record untouched.
func (r *Registry) SetStatus(jobID string, status constants.JobStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return common.NotFoundError("job " + jobID + " not found")
	}
	if !job.Status.CanTransition(status) {
		return common.ConflictErrorf("job %s cannot move %s -> %s", jobID, job.Status, status)
	}
	job.Status = status
	job.UpdatedAt = time.Now().UTC()
	return nil
}

// Transition atomically moves the job from an expected current status to the
// next one. Of several racing callers that observed the same current status,
// exactly one wins; the rest get a conflict.
func (r *Registry) Transition(jobID string, from, to constants.JobStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return common.NotFoundError("job " + jobID + " not found")
	}
	if job.Status != from {
		return common.ConflictErrorf("job %s is %s, expected %s", jobID, job.Status, from)
	}
	if !job.Status.CanTransition(to) {
		return common.ConflictErrorf("job %s cannot move %s -> %s", jobID, job.Status, to)
	}
	job.Status = to
	job.UpdatedAt = time.Now().UTC()
	return nil
}

// ApplyDelta merges a stage's partial update into the job's state and records
// the stage that produced it. No-op fields keep their current value.
func (r *Registry) ApplyDelta(jobID string, stage constants.StageID, delta state.Delta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return common.NotFoundError("job " + jobID + " not found")
	}
	if job.Status.IsTerminal() {
		return common.ConflictErrorf("job %s is %s and cannot change", jobID, job.Status)
	}
	job.State.Apply(delta)
	job.CurrentStage = stage
	job.UpdatedAt = time.Now().UTC()
	return nil
}

// SetResult records the final artifact and forces the job to completed.
func (r *Registry) SetResult(jobID string, res Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return common.NotFoundError("job " + jobID + " not found")
	}
	if !job.Status.CanTransition(constants.JobStatusCompleted) {
		return common.ConflictErrorf("job %s cannot complete from %s", jobID, job.Status)
	}
	job.Result = &res
	job.Status = constants.JobStatusCompleted
	job.UpdatedAt = time.Now().UTC()
	return nil
}

// SetError records a terminal failure message and forces the job to failed.
func (r *Registry) SetError(jobID string, msg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return common.NotFoundError("job " + jobID + " not found")
	}
	if !job.Status.CanTransition(constants.JobStatusFailed) {
		return common.ConflictErrorf("job %s cannot fail from %s", jobID, job.Status)
	}
	job.Error = msg
	job.Status = constants.JobStatusFailed
	job.UpdatedAt = time.Now().UTC()
	return nil
}

// Delete removes the job record entirely. Deleting an unknown job is
// NotFound so callers can distinguish it from success.
func (r *Registry) Delete(jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[jobID]; !ok {
		return common.NotFoundError("job " + jobID + " not found")
	}
	delete(r.jobs, jobID)
	return nil
}

// List returns snapshots of all jobs, newest first. Used by status surfaces.
func (r *Registry) List() []Job {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		out = append(out, job.snapshot())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
