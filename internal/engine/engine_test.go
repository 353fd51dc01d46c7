package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/stages"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

type fakeStage struct {
	id constants.StageID
	fn func(st state.PipelineState) (state.Delta, error)
}

func (f *fakeStage) ID() constants.StageID { return f.id }
func (f *fakeStage) Run(_ context.Context, st state.PipelineState) (state.Delta, error) {
	return f.fn(st)
}

func stageOf(id constants.StageID, fn func(st state.PipelineState) (state.Delta, error)) stages.Stage {
	return &fakeStage{id: id, fn: fn}
}

func TestRouteAfterGrade_PriorityOrder(t *testing.T) {
	cases := []struct {
		name     string
		iter     int
		graded   int
		rejected int
		want     constants.StageID
	}{
		{"cap reached wins even with rejects", 3, 0, 2, constants.StageSynthesize},
		{"cap overshoot still forward", 7, 0, 5, constants.StageSynthesize},
		{"accepted results win over rejects", 0, 1, 2, constants.StageSynthesize},
		{"only rejects loops back", 0, 0, 2, constants.StageRewrite},
		{"nothing at all defaults forward", 0, 0, 0, constants.StageSynthesize},
		{"one more pass allowed below cap", 2, 0, 1, constants.StageRewrite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := state.PipelineState{
				SearchIterations:  tc.iter,
				GradedResults:     make([]state.SearchResult, tc.graded),
				RejectedQuestions: make([]int, tc.rejected),
			}
			if got := routeAfterGrade(st); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRouteAfterEvaluate(t *testing.T) {
	cases := []struct {
		name  string
		score float64
		iter  int
		want  constants.StageID
	}{
		{"passing score goes to review", 85, 0, constants.StageReview},
		{"exactly at threshold goes to review", 70, 0, constants.StageReview},
		{"low score retries", 65, 1, constants.StageDraft},
		{"low score escalates at cap", 65, 2, constants.StageReview},
		{"zero score first pass retries", 0, 1, constants.StageDraft},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := state.PipelineState{QualityScore: tc.score, WriteIterations: tc.iter}
			if got := routeAfterEvaluate(st); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRouteAfterReview_TotalOverDecisions(t *testing.T) {
	cases := map[constants.Decision]constants.StageID{
		constants.DecisionApprove: constants.StagePublish,
		constants.DecisionEdit:    constants.StageDraft,
		constants.DecisionReject:  constants.StageDecompose,
		constants.DecisionUnset:   constants.StagePublish,
		constants.Decision("wat"): constants.StagePublish,
	}
	for decision, want := range cases {
		if got := routeAfterReview(state.PipelineState{HumanDecision: decision}); got != want {
			t.Fatalf("decision %q: got %q, want %q", decision, got, want)
		}
	}
}

// happySet runs the full graph with stages that behave like the real ones:
// one search pass, everything graded in, a draft that passes review.
func happySet(searchCalls *int) map[constants.StageID]stages.Stage {
	return map[constants.StageID]stages.Stage{
		constants.StageDecompose: stageOf(constants.StageDecompose, func(state.PipelineState) (state.Delta, error) {
			return state.Delta{
				SubQuestions:     state.Strings([]string{"q0", "q1"}),
				SearchIterations: state.Int(0),
				WriteIterations:  state.Int(0),
			}, nil
		}),
		constants.StageSearch: stageOf(constants.StageSearch, func(state.PipelineState) (state.Delta, error) {
			if searchCalls != nil {
				*searchCalls++
			}
			return state.Delta{SearchResults: state.Results([]state.SearchResult{{URL: "https://a.test"}})}, nil
		}),
		constants.StageGrade: stageOf(constants.StageGrade, func(st state.PipelineState) (state.Delta, error) {
			return state.Delta{
				GradedResults:     state.Results(st.SearchResults),
				RejectedQuestions: state.Ints(nil),
			}, nil
		}),
		constants.StageSynthesize: stageOf(constants.StageSynthesize, func(state.PipelineState) (state.Delta, error) {
			return state.Delta{
				ResearchNotes: state.Str("notes"),
				Sources:       state.Strings([]string{"https://a.test"}),
			}, nil
		}),
		constants.StageDraft: stageOf(constants.StageDraft, func(state.PipelineState) (state.Delta, error) {
			return state.Delta{ArticleDraft: state.Str("draft"), HumanFeedback: state.Str("")}, nil
		}),
		constants.StageEvaluate: stageOf(constants.StageEvaluate, func(st state.PipelineState) (state.Delta, error) {
			return state.Delta{
				QualityScore:    state.Float(82),
				QualityFeedback: state.Str("fine"),
				WriteIterations: state.Int(st.WriteIterations + 1),
			}, nil
		}),
		constants.StagePublish: stageOf(constants.StagePublish, func(state.PipelineState) (state.Delta, error) {
			return state.Delta{ExportPath: state.Str("/outputs/article.md")}, nil
		}),
	}
}

// stepUntilNotDone drives the engine until it stops yielding StageDone.
func stepUntilNotDone(t *testing.T, e *Engine, jobID string) Outcome {
	t.Helper()
	for i := 0; i < 50; i++ {
		out, err := e.Step(context.Background(), jobID)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if out.Kind != StageDone {
			return out
		}
	}
	t.Fatalf("engine did not settle within 50 steps")
	return Outcome{}
}

func TestEngine_RunsToSuspensionThenPublishesOnApprove(t *testing.T) {
	e := New(happySet(nil), NewMemoryStore(), 0, nil)
	ctx := context.Background()

	if err := e.Start(ctx, "job-1", state.New(state.Request{Query: "X", WordCount: 1000})); err != nil {
		t.Fatalf("start: %v", err)
	}

	out := stepUntilNotDone(t, e, "job-1")
	if out.Kind != Suspended {
		t.Fatalf("expected suspension, got kind %v", out.Kind)
	}
	if out.Payload.ArticleDraft != "draft" || out.Payload.QualityScore != 82 {
		t.Fatalf("review payload wrong: %+v", out.Payload)
	}

	// Suspension is stable: stepping again re-yields it without side effects.
	again := stepUntilNotDone(t, e, "job-1")
	if again.Kind != Suspended || again.Payload.ArticleDraft != "draft" {
		t.Fatalf("second step at review must re-suspend, got kind %v", again.Kind)
	}

	res, err := e.Resume(ctx, "job-1", constants.DecisionApprove, "")
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if res.Stage != constants.StageReview || res.State.FinalArticle != "draft" {
		t.Fatalf("approve must promote the draft: %+v", res.State.FinalArticle)
	}

	final := stepUntilNotDone(t, e, "job-1")
	if final.Kind != Finished {
		t.Fatalf("expected finished, got kind %v", final.Kind)
	}
	if final.State.ExportPath != "/outputs/article.md" {
		t.Fatalf("publish did not run before end: %+v", final.State.ExportPath)
	}
}

func TestEngine_ResumeChangesOnlyHumanFields(t *testing.T) {
	e := New(happySet(nil), NewMemoryStore(), 0, nil)
	ctx := context.Background()

	if err := e.Start(ctx, "job-1", state.New(state.Request{Query: "X"})); err != nil {
		t.Fatalf("start: %v", err)
	}
	suspended := stepUntilNotDone(t, e, "job-1")
	before := suspended.State.Clone()

	res, err := e.Resume(ctx, "job-1", constants.DecisionEdit, "add more examples")
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	after := res.State.Clone()

	if after.HumanDecision != constants.DecisionEdit || after.HumanFeedback != "add more examples" {
		t.Fatalf("human fields not spliced in: %+v", after)
	}
	after.HumanDecision = before.HumanDecision
	after.HumanFeedback = before.HumanFeedback
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("resume changed fields beyond the human pair:\nbefore %+v\nafter  %+v", before, after)
	}

	pos, err := e.Position(ctx, "job-1")
	if err != nil {
		t.Fatalf("position: %v", err)
	}
	if pos != constants.StageDraft {
		t.Fatalf("edit must route to draft, got %q", pos)
	}
}

func TestEngine_RejectRestartsAtDecompose(t *testing.T) {
	e := New(happySet(nil), NewMemoryStore(), 0, nil)
	ctx := context.Background()

	if err := e.Start(ctx, "job-1", state.New(state.Request{Query: "X"})); err != nil {
		t.Fatalf("start: %v", err)
	}
	stepUntilNotDone(t, e, "job-1")

	if _, err := e.Resume(ctx, "job-1", constants.DecisionReject, "wrong angle"); err != nil {
		t.Fatalf("resume: %v", err)
	}
	pos, _ := e.Position(ctx, "job-1")
	if pos != constants.StageDecompose {
		t.Fatalf("reject must restart research, got %q", pos)
	}

	// The restarted run must come back around to a fresh suspension.
	out := stepUntilNotDone(t, e, "job-1")
	if out.Kind != Suspended {
		t.Fatalf("restarted run did not reach review, kind %v", out.Kind)
	}
}

func TestEngine_ResumeOutsideReviewConflicts(t *testing.T) {
	e := New(happySet(nil), NewMemoryStore(), 0, nil)
	ctx := context.Background()

	if err := e.Start(ctx, "job-1", state.New(state.Request{Query: "X"})); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := e.Resume(ctx, "job-1", constants.DecisionApprove, ""); err == nil {
		t.Fatalf("resume before review must fail")
	}
}

func TestEngine_SearchCapForcesSynthesize(t *testing.T) {
	searchCalls := 0
	set := happySet(&searchCalls)
	// Grade never accepts anything, so only the cap can break the loop.
	set[constants.StageGrade] = stageOf(constants.StageGrade, func(state.PipelineState) (state.Delta, error) {
		return state.Delta{
			GradedResults:     state.Results(nil),
			RejectedQuestions: state.Ints([]int{0, 1}),
		}, nil
	})
	set[constants.StageRewrite] = stageOf(constants.StageRewrite, func(st state.PipelineState) (state.Delta, error) {
		return state.Delta{
			SubQuestions:      state.Strings(st.SubQuestions),
			SearchIterations:  state.Int(st.SearchIterations + 1),
			RejectedQuestions: state.Ints(nil),
		}, nil
	})

	e := New(set, NewMemoryStore(), 0, nil)
	ctx := context.Background()
	if err := e.Start(ctx, "job-1", state.New(state.Request{Query: "X"})); err != nil {
		t.Fatalf("start: %v", err)
	}

	out := stepUntilNotDone(t, e, "job-1")
	if out.Kind != Suspended {
		t.Fatalf("pipeline must still reach review, kind %v", out.Kind)
	}
	if out.State.SearchIterations != constants.MaxSearchIterations {
		t.Fatalf("search iterations = %d, want exactly %d", out.State.SearchIterations, constants.MaxSearchIterations)
	}
	// Initial pass plus one per rewrite.
	if searchCalls != constants.MaxSearchIterations+1 {
		t.Fatalf("search ran %d times, want %d", searchCalls, constants.MaxSearchIterations+1)
	}
}

func TestEngine_WriteCapEscalatesToReview(t *testing.T) {
	evaluations := 0
	set := happySet(nil)
	// Every draft scores below threshold; only the cap can reach review.
	set[constants.StageEvaluate] = stageOf(constants.StageEvaluate, func(st state.PipelineState) (state.Delta, error) {
		evaluations++
		return state.Delta{
			QualityScore:    state.Float(40),
			QualityFeedback: state.Str("needs work"),
			WriteIterations: state.Int(st.WriteIterations + 1),
		}, nil
	})

	e := New(set, NewMemoryStore(), 0, nil)
	ctx := context.Background()
	if err := e.Start(ctx, "job-1", state.New(state.Request{Query: "X"})); err != nil {
		t.Fatalf("start: %v", err)
	}

	out := stepUntilNotDone(t, e, "job-1")
	if out.Kind != Suspended {
		t.Fatalf("low scores at cap must escalate to review, kind %v", out.Kind)
	}
	if out.State.WriteIterations != constants.MaxWriteIterations {
		t.Fatalf("write iterations = %d, want %d", out.State.WriteIterations, constants.MaxWriteIterations)
	}
	if evaluations != constants.MaxWriteIterations {
		t.Fatalf("evaluate ran %d times, want %d", evaluations, constants.MaxWriteIterations)
	}
}

func TestEngine_StageErrorLeavesCheckpointUntouched(t *testing.T) {
	set := happySet(nil)
	set[constants.StageSearch] = stageOf(constants.StageSearch, func(state.PipelineState) (state.Delta, error) {
		return state.Delta{}, errors.New("backend down")
	})

	store := NewMemoryStore()
	e := New(set, store, 0, nil)
	ctx := context.Background()
	if err := e.Start(ctx, "job-1", state.New(state.Request{Query: "X"})); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Decompose succeeds, search fails.
	if _, err := e.Step(ctx, "job-1"); err != nil {
		t.Fatalf("decompose step: %v", err)
	}
	if _, err := e.Step(ctx, "job-1"); err == nil {
		t.Fatalf("search step must fail")
	}

	cp, err := store.Load(ctx, "job-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cp.Position != constants.StageSearch {
		t.Fatalf("failed stage must not advance the checkpoint, position %q", cp.Position)
	}
	if len(cp.State.SearchResults) != 0 {
		t.Fatalf("partial results leaked into the checkpoint")
	}
}

func TestMemoryStore_HandsOutIndependentCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	st := state.New(state.Request{Query: "X"})
	st.SubQuestions = []string{"original"}
	if err := store.Save(ctx, Checkpoint{JobID: "j", Position: constants.StageSearch, State: st}); err != nil {
		t.Fatalf("save: %v", err)
	}

	cp, _ := store.Load(ctx, "j")
	cp.State.SubQuestions[0] = "mutated"

	cp2, _ := store.Load(ctx, "j")
	if cp2.State.SubQuestions[0] != "original" {
		t.Fatalf("store shares state with callers")
	}
}

func TestMemoryStore_LoadUnknownJobFails(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Load(context.Background(), "nope"); err == nil {
		t.Fatalf("expected error for unknown job")
	}
}
