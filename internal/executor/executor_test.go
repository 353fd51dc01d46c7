package executor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/engine"
	"github.com/joseph-ayodele/research-agent/internal/registry"
	"github.com/joseph-ayodele/research-agent/internal/search"
	"github.com/joseph-ayodele/research-agent/internal/stages"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// promptRouter answers each stage's prompt by recognizing its preamble, so
// the real stage set runs end to end without a live backend.
type promptRouter struct {
	evaluateScore string
	failDraft     bool
}

func (p *promptRouter) Generate(_ context.Context, prompt string, _ float32) (string, error) {
	switch {
	case strings.Contains(prompt, "research planner"):
		return `{"sub_questions": ["What is X?", "Why does X matter?"]}`, nil
	case strings.Contains(prompt, "Grade how well"):
		return `{"score": 4, "reasoning": "relevant"}`, nil
	case strings.Contains(prompt, "returned no usable results"):
		return `{"rewritten_query": "rephrased"}`, nil
	case strings.Contains(prompt, "Synthesize the graded"):
		return "## Theme\n\nnotes", nil
	case strings.Contains(prompt, "Write a complete article"):
		if p.failDraft {
			return "", errors.New("generation backend down")
		}
		return "# X\n\nbody text", nil
	case strings.Contains(prompt, "Evaluate the article"):
		score := p.evaluateScore
		if score == "" {
			score = "85"
		}
		return `{"total_score": ` + score + `, "feedback": "Approved"}`, nil
	}
	return "", errors.New("unrecognized prompt")
}

type memoryExporter struct{ path string }

func (m *memoryExporter) Export(_ context.Context, _ string, _ []string, _ constants.ExportFormat, _ string) (string, error) {
	return m.path, nil
}

func newHarness(t *testing.T, gen *promptRouter) (*Executor, *registry.Registry, *registry.Broadcaster) {
	t.Helper()
	client := search.ClientFunc(func(_ context.Context, query string, _ int) []search.Result {
		return []search.Result{{Title: "t", Snippet: "s", URL: "https://" + strings.Fields(query)[0] + ".test"}}
	})
	set := stages.DefaultSet(gen, client, &memoryExporter{path: "/outputs/x.md"}, 3, nil)
	eng := engine.New(set, engine.NewMemoryStore(), 0, nil)
	reg := registry.New(nil)
	bc := registry.NewBroadcaster(nil)
	return New(context.Background(), eng, reg, bc, nil), reg, bc
}

func waitForStatus(t *testing.T, reg *registry.Registry, jobID string, want constants.JobStatus) registry.Job {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		job, err := reg.Get(jobID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if job.Status == want {
			return job
		}
		if job.Status.IsTerminal() {
			t.Fatalf("job settled at %s (error %q) while waiting for %s", job.Status, job.Error, want)
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for status %s", want)
	return registry.Job{}
}

func TestExecutor_FullRunThroughReviewToCompletion(t *testing.T) {
	x, reg, bc := newHarness(t, &promptRouter{})

	job, err := x.Submit(context.Background(), state.Request{
		Query:        "X",
		ExportFormat: constants.FormatMarkdown,
		Tone:         constants.ToneProfessional,
		WordCount:    1000,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	parked := waitForStatus(t, reg, job.ID, constants.JobStatusHITLReview)
	if parked.State.ArticleDraft == "" {
		t.Fatalf("no draft at review: %+v", parked.State)
	}
	if parked.State.QualityScore < constants.QualityThreshold {
		t.Fatalf("review reached with failing score %v", parked.State.QualityScore)
	}
	if parked.CurrentStage != constants.StageEvaluate {
		t.Fatalf("last completed stage = %q, want evaluate", parked.CurrentStage)
	}

	// Completion events land on subscribers attached before resume.
	ch, cancel := bc.Subscribe(job.ID)
	defer cancel()

	if err := x.Resume(context.Background(), job.ID, constants.DecisionApprove, ""); err != nil {
		t.Fatalf("resume: %v", err)
	}
	done := waitForStatus(t, reg, job.ID, constants.JobStatusCompleted)
	x.Wait()

	if done.Result == nil {
		t.Fatalf("completed job has no result")
	}
	if done.Result.FinalArticle != done.State.ArticleDraft {
		t.Fatalf("approve must promote the draft verbatim")
	}
	if done.Result.ExportPath != "/outputs/x.md" {
		t.Fatalf("export path = %q", done.Result.ExportPath)
	}
	if len(done.Result.Sources) == 0 {
		t.Fatalf("result lost the sources")
	}

	sawCompleted := false
	timeout := time.After(2 * time.Second)
	for !sawCompleted {
		select {
		case ev := <-ch:
			if ev.Type == registry.EventStatusUpdate && ev.Status == constants.JobStatusCompleted {
				sawCompleted = true
			}
		case <-timeout:
			t.Fatalf("never saw the completed status event")
		}
	}
}

func TestExecutor_EditResumeRedraftsWithFeedback(t *testing.T) {
	x, reg, _ := newHarness(t, &promptRouter{})

	job, err := x.Submit(context.Background(), state.Request{Query: "X", WordCount: 800})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	waitForStatus(t, reg, job.ID, constants.JobStatusHITLReview)

	if err := x.Resume(context.Background(), job.ID, constants.DecisionEdit, "add more examples"); err != nil {
		t.Fatalf("resume: %v", err)
	}

	// Edit loops back to draft, re-evaluates, and parks at review again.
	parked := waitForStatus(t, reg, job.ID, constants.JobStatusHITLReview)
	x.Wait()
	if parked.State.HumanDecision != constants.DecisionEdit {
		t.Fatalf("decision not recorded: %q", parked.State.HumanDecision)
	}
	if parked.State.HumanFeedback != "" {
		t.Fatalf("draft stage must consume and clear the feedback, got %q", parked.State.HumanFeedback)
	}
	if parked.State.FinalArticle != "" {
		t.Fatalf("edit must not promote a final article")
	}
}

func TestExecutor_ResumeOnCompletedJobConflicts(t *testing.T) {
	x, reg, _ := newHarness(t, &promptRouter{})

	job, err := x.Submit(context.Background(), state.Request{Query: "X", WordCount: 800})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	waitForStatus(t, reg, job.ID, constants.JobStatusHITLReview)
	if err := x.Resume(context.Background(), job.ID, constants.DecisionApprove, ""); err != nil {
		t.Fatalf("first resume: %v", err)
	}
	waitForStatus(t, reg, job.ID, constants.JobStatusCompleted)
	x.Wait()

	if err := x.Resume(context.Background(), job.ID, constants.DecisionApprove, ""); err == nil {
		t.Fatalf("resume on a completed job must conflict")
	}
}

func TestExecutor_RacingResumesHaveOneWinner(t *testing.T) {
	x, reg, _ := newHarness(t, &promptRouter{})

	job, err := x.Submit(context.Background(), state.Request{Query: "X", WordCount: 800})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	waitForStatus(t, reg, job.ID, constants.JobStatusHITLReview)

	var wg sync.WaitGroup
	wins := make(chan struct{}, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := x.Resume(context.Background(), job.ID, constants.DecisionApprove, ""); err == nil {
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
		t.Fatalf("resume succeeded %d times, want exactly 1", won)
	}

	final := waitForStatus(t, reg, job.ID, constants.JobStatusCompleted)
	x.Wait()
	if final.Result == nil || final.Result.FinalArticle == "" {
		t.Fatalf("winner did not drive the job to a result: %+v", final.Result)
	}
}

func TestExecutor_StageFailureIsTerminalAndBroadcast(t *testing.T) {
	x, reg, _ := newHarness(t, &promptRouter{failDraft: true})

	job, err := x.Submit(context.Background(), state.Request{Query: "X", WordCount: 800})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		j, gerr := reg.Get(job.ID)
		if gerr != nil {
			t.Fatalf("get: %v", gerr)
		}
		if j.Status == constants.JobStatusFailed {
			if !strings.Contains(j.Error, "generation backend down") {
				t.Fatalf("error message lost: %q", j.Error)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("job never failed, status %s", j.Status)
		}
		time.Sleep(5 * time.Millisecond)
	}
	x.Wait()

	// Failed is absorbing.
	if err := x.Resume(context.Background(), job.ID, constants.DecisionApprove, ""); err == nil {
		t.Fatalf("resume on a failed job must be rejected")
	}
}
