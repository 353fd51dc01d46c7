package constants

// JobStatus is the canonical lifecycle status for a research job.
type JobStatus string

// Stable values (store these exact strings in DB and wire responses).
const (
	JobStatusPending    JobStatus = "pending"     // created, driver not started yet
	JobStatusProcessing JobStatus = "processing"  // driver advancing the pipeline
	JobStatusHITLReview JobStatus = "hitl_review" // suspended at the human checkpoint
	JobStatusCompleted  JobStatus = "completed"   // terminal success
	JobStatusFailed     JobStatus = "failed"      // terminal failure
)

// IsTerminal reports whether the status is absorbing: once a job is completed
// or failed, no further mutation is allowed except read.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// CanTransition reports whether moving from s to next respects the monotonic
// lifecycle pending → processing → {hitl_review ↔ processing} → {completed|failed}.
func (s JobStatus) CanTransition(next JobStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case JobStatusPending:
		return next == JobStatusProcessing || next == JobStatusFailed
	case JobStatusProcessing:
		return next == JobStatusHITLReview || next == JobStatusCompleted || next == JobStatusFailed
	case JobStatusHITLReview:
		return next == JobStatusProcessing || next == JobStatusFailed
	default:
		return false
	}
}
