package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

func newJob(t *testing.T, r *Registry) string {
	t.Helper()
	job := r.Create(state.Request{Query: "grid storage", WordCount: 1000})
	if job.ID == "" || job.Status != constants.JobStatusPending {
		t.Fatalf("fresh job malformed: %+v", job)
	}
	return job.ID
}

func TestRegistry_StatusIsMonotonic(t *testing.T) {
	r := New(nil)
	id := newJob(t, r)

	steps := []constants.JobStatus{
		constants.JobStatusProcessing,
		constants.JobStatusHITLReview,
		constants.JobStatusProcessing,
		constants.JobStatusCompleted,
	}
	for _, s := range steps {
		if err := r.SetStatus(id, s); err != nil {
			t.Fatalf("transition to %s: %v", s, err)
		}
	}

	// Completed is absorbing.
	if err := r.SetStatus(id, constants.JobStatusProcessing); err == nil {
		t.Fatalf("completed job must not regress to processing")
	}
	if err := r.SetError(id, "too late"); err == nil {
		t.Fatalf("completed job must not become failed")
	}
	job, _ := r.Get(id)
	if job.Status != constants.JobStatusCompleted || job.Error != "" {
		t.Fatalf("terminal job mutated: %+v", job)
	}
}

func TestRegistry_PendingCannotSkipToReview(t *testing.T) {
	r := New(nil)
	id := newJob(t, r)
	if err := r.SetStatus(id, constants.JobStatusHITLReview); err == nil {
		t.Fatalf("pending -> hitl_review must be rejected")
	}
}

func TestRegistry_ApplyDeltaIsIdempotent(t *testing.T) {
	r := New(nil)
	id := newJob(t, r)

	delta := state.Delta{
		SubQuestions:     state.Strings([]string{"q0", "q1"}),
		SearchIterations: state.Int(1),
	}
	if err := r.ApplyDelta(id, constants.StageRewrite, delta); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := r.ApplyDelta(id, constants.StageRewrite, delta); err != nil {
		t.Fatalf("apply twice: %v", err)
	}

	job, _ := r.Get(id)
	if job.State.SearchIterations != 1 {
		t.Fatalf("counter = %d after double apply, want 1", job.State.SearchIterations)
	}
	if len(job.State.SubQuestions) != 2 {
		t.Fatalf("sub-questions = %v", job.State.SubQuestions)
	}
	if job.CurrentStage != constants.StageRewrite {
		t.Fatalf("current stage = %q", job.CurrentStage)
	}
}

func TestRegistry_GetReturnsIndependentSnapshot(t *testing.T) {
	r := New(nil)
	id := newJob(t, r)
	if err := r.ApplyDelta(id, constants.StageDecompose, state.Delta{
		SubQuestions: state.Strings([]string{"original"}),
	}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	job, _ := r.Get(id)
	job.State.SubQuestions[0] = "mutated"

	job2, _ := r.Get(id)
	if job2.State.SubQuestions[0] != "original" {
		t.Fatalf("registry leaked owned state to a caller")
	}
}

func TestRegistry_SetResultForcesCompleted(t *testing.T) {
	r := New(nil)
	id := newJob(t, r)
	_ = r.SetStatus(id, constants.JobStatusProcessing)

	res := Result{FinalArticle: "final", ExportPath: "/out/a.md", Sources: []string{"https://a.test"}, QualityScore: 82}
	if err := r.SetResult(id, res); err != nil {
		t.Fatalf("set result: %v", err)
	}
	job, _ := r.Get(id)
	if job.Status != constants.JobStatusCompleted || job.Result == nil || job.Result.FinalArticle != "final" {
		t.Fatalf("result not recorded: %+v", job)
	}

	// A second result on a terminal job is rejected.
	if err := r.SetResult(id, Result{}); err == nil {
		t.Fatalf("double completion must fail")
	}
}

func TestRegistry_StatusHidesDraftUntilReview(t *testing.T) {
	r := New(nil)
	id := newJob(t, r)
	_ = r.SetStatus(id, constants.JobStatusProcessing)
	if err := r.ApplyDelta(id, constants.StageDraft, state.Delta{
		ArticleDraft: state.Str("draft text"),
		Sources:      state.Strings([]string{"https://a.test", "https://b.test"}),
		QualityScore: state.Float(82),
	}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	view, err := r.Status(id)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if view.Draft != "" {
		t.Fatalf("draft leaked while processing: %q", view.Draft)
	}
	if len(view.Sources) != 2 || view.Sources[0] != "https://a.test" {
		t.Fatalf("sources missing from status view: %v", view.Sources)
	}

	_ = r.SetStatus(id, constants.JobStatusHITLReview)
	view, err = r.Status(id)
	if err != nil {
		t.Fatalf("status at review: %v", err)
	}
	if view.Draft != "draft text" || view.QualityScore != 82 {
		t.Fatalf("review view incomplete: %+v", view)
	}
	if view.Progress != "awaiting review, draft scored 82/100" {
		t.Fatalf("progress = %q", view.Progress)
	}
}

func TestRegistry_ResultBeforeCompletionConflicts(t *testing.T) {
	r := New(nil)
	id := newJob(t, r)
	_ = r.SetStatus(id, constants.JobStatusProcessing)

	if _, err := r.Result(id); err == nil {
		t.Fatalf("result on a processing job must conflict")
	}

	want := Result{FinalArticle: "final", ExportPath: "/out/a.md", Sources: []string{"https://a.test"}, QualityScore: 90}
	if err := r.SetResult(id, want); err != nil {
		t.Fatalf("set result: %v", err)
	}
	got, err := r.Result(id)
	if err != nil {
		t.Fatalf("result after completion: %v", err)
	}
	if got.FinalArticle != "final" || got.ExportPath != "/out/a.md" {
		t.Fatalf("wrong result: %+v", got)
	}

	// The returned slice is a copy, not the registry's own.
	got.Sources[0] = "mutated"
	again, _ := r.Result(id)
	if again.Sources[0] != "https://a.test" {
		t.Fatalf("registry leaked owned result to a caller")
	}
}

func TestRegistry_TransitionHasExactlyOneWinner(t *testing.T) {
	r := New(nil)
	id := newJob(t, r)
	_ = r.SetStatus(id, constants.JobStatusProcessing)
	_ = r.SetStatus(id, constants.JobStatusHITLReview)

	var wg sync.WaitGroup
	wins := make(chan struct{}, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.Transition(id, constants.JobStatusHITLReview, constants.JobStatusProcessing); err == nil {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for range wins {
		won++
	}
	if won != 1 {
		t.Fatalf("claims succeeded %d times, want exactly 1", won)
	}
	job, _ := r.Get(id)
	if job.Status != constants.JobStatusProcessing {
		t.Fatalf("status after claim = %s", job.Status)
	}
}

func TestRegistry_DeleteThenGetIsNotFound(t *testing.T) {
	r := New(nil)
	id := newJob(t, r)
	if err := r.Delete(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.Get(id); err == nil {
		t.Fatalf("deleted job still readable")
	}
	if err := r.Delete(id); err == nil {
		t.Fatalf("double delete must be NotFound")
	}
}

func TestRegistry_ConcurrentUpdatesStayConsistent(t *testing.T) {
	r := New(nil)
	id := newJob(t, r)
	_ = r.SetStatus(id, constants.JobStatusProcessing)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = r.ApplyDelta(id, constants.StageSearch, state.Delta{
				SearchIterations: state.Int(n % 3),
			})
			_, _ = r.Get(id)
		}(i)
	}
	wg.Wait()

	job, err := r.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if job.State.SearchIterations < 0 || job.State.SearchIterations > 2 {
		t.Fatalf("counter outside any written value: %d", job.State.SearchIterations)
	}
}

func TestBroadcaster_DeliversInPublishOrder(t *testing.T) {
	b := NewBroadcaster(nil)
	ch, cancel := b.Subscribe("job-1")
	defer cancel()

	for i := 0; i < 5; i++ {
		b.Publish(Event{Type: EventNodeComplete, JobID: "job-1", Message: fmt.Sprintf("step-%d", i)})
	}
	for i := 0; i < 5; i++ {
		ev := <-ch
		if want := fmt.Sprintf("step-%d", i); ev.Message != want {
			t.Fatalf("event %d out of order: got %q", i, ev.Message)
		}
	}
}

func TestBroadcaster_IsolatesJobs(t *testing.T) {
	b := NewBroadcaster(nil)
	ch1, cancel1 := b.Subscribe("job-1")
	_, cancel2 := b.Subscribe("job-2")
	defer cancel1()
	defer cancel2()

	b.Publish(Event{Type: EventStatusUpdate, JobID: "job-2"})

	select {
	case ev := <-ch1:
		t.Fatalf("job-1 subscriber got job-2 event: %+v", ev)
	default:
	}
}

func TestBroadcaster_PrunesFullSubscriber(t *testing.T) {
	b := NewBroadcaster(nil)
	ch, cancel := b.Subscribe("job-1")
	defer cancel()

	// Never drained: one overflow past the buffer prunes the subscriber.
	for i := 0; i < subscriberBuffer+1; i++ {
		b.Publish(Event{Type: EventNodeComplete, JobID: "job-1"})
	}
	if n := b.SubscriberCount("job-1"); n != 0 {
		t.Fatalf("slow subscriber not pruned, %d left", n)
	}

	// Buffered events remain readable, then the channel reports closed.
	for i := 0; i < subscriberBuffer; i++ {
		if _, ok := <-ch; !ok {
			t.Fatalf("buffered event %d lost", i)
		}
	}
	if _, ok := <-ch; ok {
		t.Fatalf("channel still open after prune")
	}
}

func TestBroadcaster_CancelAfterPruneIsSafe(t *testing.T) {
	b := NewBroadcaster(nil)
	_, cancel := b.Subscribe("job-1")
	for i := 0; i < subscriberBuffer+1; i++ {
		b.Publish(Event{Type: EventNodeComplete, JobID: "job-1"})
	}
	cancel() // already pruned; must not panic or double-close
}

func TestBroadcaster_DropJobClosesEveryone(t *testing.T) {
	b := NewBroadcaster(nil)
	ch1, _ := b.Subscribe("job-1")
	ch2, _ := b.Subscribe("job-1")

	b.DropJob("job-1")

	if _, ok := <-ch1; ok {
		t.Fatalf("subscriber 1 not closed")
	}
	if _, ok := <-ch2; ok {
		t.Fatalf("subscriber 2 not closed")
	}
	if n := b.SubscriberCount("job-1"); n != 0 {
		t.Fatalf("%d subscribers left after drop", n)
	}
}

func TestBroadcaster_ConcurrentPublishAndSubscribe(t *testing.T) {
	b := NewBroadcaster(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch, cancel := b.Subscribe("job-1")
			defer cancel()
			for range ch {
			}
		}()
	}
	for i := 0; i < 100; i++ {
		b.Publish(Event{Type: EventNodeComplete, JobID: "job-1"})
	}
	b.DropJob("job-1")
	wg.Wait()
}
