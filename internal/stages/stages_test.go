package stages

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/internal/search"
	"github.com/joseph-ayodele/research-agent/internal/state"
)

// scriptedGen returns canned responses in order; errs mark calls that fail.
type scriptedGen struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (g *scriptedGen) Generate(_ context.Context, prompt string, _ float32) (string, error) {
	i := g.calls
	g.calls++
	g.prompts = append(g.prompts, prompt)
	if i < len(g.errs) && g.errs[i] != nil {
		return "", g.errs[i]
	}
	if i < len(g.responses) {
		return g.responses[i], nil
	}
	return "", errors.New("script exhausted")
}

func TestDecompose_ParsesStructuredResponse(t *testing.T) {
	gen := &scriptedGen{responses: []string{`{"sub_questions": ["What is X?", "Why does X matter?"]}`}}
	d := NewDecompose(gen, nil)

	delta, err := d.Run(context.Background(), state.New(state.Request{Query: "X"}))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := *delta.SubQuestions; len(got) != 2 || got[0] != "What is X?" {
		t.Fatalf("unexpected sub-questions: %v", got)
	}
	if *delta.SearchIterations != 0 || *delta.WriteIterations != 0 {
		t.Fatalf("counters must reset to 0")
	}
}

func TestDecompose_FallsBackToQuestionLines(t *testing.T) {
	gen := &scriptedGen{responses: []string{"Here are some ideas:\nWhat drives X?\nnot a question\nHow is X measured?"}}
	d := NewDecompose(gen, nil)

	delta, err := d.Run(context.Background(), state.New(state.Request{Query: "X"}))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	got := *delta.SubQuestions
	if len(got) != 2 || got[0] != "What drives X?" || got[1] != "How is X measured?" {
		t.Fatalf("fallback extraction wrong: %v", got)
	}
}

func TestDecompose_FallsBackToQueryWhenNothingParses(t *testing.T) {
	gen := &scriptedGen{responses: []string{"no structure here at all"}}
	d := NewDecompose(gen, nil)

	delta, err := d.Run(context.Background(), state.New(state.Request{Query: "grid storage"}))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := *delta.SubQuestions; len(got) != 1 || got[0] != "grid storage" {
		t.Fatalf("expected query fallback, got %v", got)
	}
}

func TestDecompose_GeneratorErrorPropagates(t *testing.T) {
	gen := &scriptedGen{errs: []error{errors.New("backend down")}}
	d := NewDecompose(gen, nil)

	if _, err := d.Run(context.Background(), state.New(state.Request{Query: "X"})); err == nil {
		t.Fatalf("expected error to propagate")
	}
}

func TestSearch_TagsResultsWithSubQuestionIndex(t *testing.T) {
	client := search.ClientFunc(func(_ context.Context, query string, _ int) []search.Result {
		if query == "empty one" {
			return nil
		}
		return []search.Result{{Title: "r-" + query, URL: "https://" + strings.ReplaceAll(query, " ", "-") + ".test"}}
	})
	s := NewSearch(client, 5, nil)

	st := state.New(state.Request{Query: "q"})
	st.SubQuestions = []string{"first question", "empty one", "third question"}

	delta, err := s.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	got := *delta.SearchResults
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].SubQuestionIndex != 0 || got[1].SubQuestionIndex != 2 {
		t.Fatalf("indices wrong: %+v", got)
	}
	if got[1].SubQuestion != "third question" {
		t.Fatalf("sub-question tag wrong: %+v", got[1])
	}
}

func TestGrade_SplitsAcceptedAndRejectedByIndex(t *testing.T) {
	// Scores per result, in order: 4 (accept), 2 (reject), 5 (accept).
	gen := &scriptedGen{responses: []string{
		`{"score": 4, "reasoning": "good"}`,
		`{"score": 2, "reasoning": "weak"}`,
		`{"score": 5, "reasoning": "great"}`,
	}}
	g := NewGrade(gen, nil)

	st := state.New(state.Request{Query: "q"})
	st.SubQuestions = []string{"q0", "q1", "q2"}
	st.SearchResults = []state.SearchResult{
		{URL: "https://a.test", SubQuestionIndex: 0, SubQuestion: "q0"},
		{URL: "https://b.test", SubQuestionIndex: 1, SubQuestion: "q1"},
		{URL: "https://c.test", SubQuestionIndex: 2, SubQuestion: "q2"},
	}

	delta, err := g.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	graded := *delta.GradedResults
	if len(graded) != 2 {
		t.Fatalf("expected 2 accepted, got %d", len(graded))
	}
	if graded[0].GradeScore != 4 || graded[1].GradeScore != 5 {
		t.Fatalf("grades not recorded: %+v", graded)
	}
	rejected := *delta.RejectedQuestions
	if len(rejected) != 1 || rejected[0] != 1 {
		t.Fatalf("expected sub-question 1 rejected, got %v", rejected)
	}
}

func TestGrade_DefaultsOnGradingFailure(t *testing.T) {
	gen := &scriptedGen{
		responses: []string{"", "utter nonsense"},
		errs:      []error{errors.New("backend down"), nil},
	}
	g := NewGrade(gen, nil)

	st := state.New(state.Request{Query: "q"})
	st.SubQuestions = []string{"q0"}
	st.SearchResults = []state.SearchResult{
		{URL: "https://a.test", SubQuestionIndex: 0},
		{URL: "https://b.test", SubQuestionIndex: 0},
	}

	delta, err := g.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("grading failures must not fail the stage: %v", err)
	}
	graded := *delta.GradedResults
	if len(graded) != 2 {
		t.Fatalf("defaulted results must pass the threshold, got %d", len(graded))
	}
	for _, r := range graded {
		if r.GradeScore != defaultGrade {
			t.Fatalf("expected default grade %d, got %+v", defaultGrade, r)
		}
	}
	if rejected := *delta.RejectedQuestions; len(rejected) != 0 {
		t.Fatalf("no sub-question should be rejected: %v", rejected)
	}
}

func TestGrade_SubQuestionWithNoResultsIsRejected(t *testing.T) {
	gen := &scriptedGen{responses: []string{`{"score": 4}`}}
	g := NewGrade(gen, nil)

	st := state.New(state.Request{Query: "q"})
	st.SubQuestions = []string{"covered", "uncovered"}
	st.SearchResults = []state.SearchResult{{URL: "https://a.test", SubQuestionIndex: 0}}

	delta, err := g.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rejected := *delta.RejectedQuestions; len(rejected) != 1 || rejected[0] != 1 {
		t.Fatalf("expected index 1 rejected, got %v", rejected)
	}
}

func TestRewrite_RewritesByIndexAndClearsQueue(t *testing.T) {
	gen := &scriptedGen{responses: []string{`{"rewritten_query": "better phrasing"}`}}
	r := NewRewrite(gen, nil)

	st := state.New(state.Request{Query: "topic"})
	// Duplicate text on purpose: index identity must rewrite only entry 2.
	st.SubQuestions = []string{"same text", "keep me", "same text"}
	st.RejectedQuestions = []int{2}
	st.SearchIterations = 1

	delta, err := r.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	got := *delta.SubQuestions
	if got[0] != "same text" || got[1] != "keep me" || got[2] != "better phrasing" {
		t.Fatalf("index identity violated: %v", got)
	}
	if *delta.SearchIterations != 2 {
		t.Fatalf("iteration counter = %d, want 2", *delta.SearchIterations)
	}
	if len(*delta.RejectedQuestions) != 0 {
		t.Fatalf("rejected queue not cleared")
	}
}

func TestRewrite_KeepsOriginalOnFailure(t *testing.T) {
	gen := &scriptedGen{errs: []error{errors.New("backend down")}}
	r := NewRewrite(gen, nil)

	st := state.New(state.Request{Query: "topic"})
	st.SubQuestions = []string{"only question"}
	st.RejectedQuestions = []int{0}

	delta, err := r.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := *delta.SubQuestions; got[0] != "only question" {
		t.Fatalf("failed rewrite must keep original, got %v", got)
	}
}

func TestRewrite_SchemaMismatchKeepsOriginal(t *testing.T) {
	// Valid JSON, wrong shape: an empty rewritten_query fails validation.
	gen := &scriptedGen{responses: []string{`{"rewritten_query": ""}`}}
	r := NewRewrite(gen, nil)

	st := state.New(state.Request{Query: "topic"})
	st.SubQuestions = []string{"only question"}
	st.RejectedQuestions = []int{0}

	delta, err := r.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := *delta.SubQuestions; got[0] != "only question" {
		t.Fatalf("invalid rewrite must keep original, got %v", got)
	}
}

func TestRewrite_OutOfRangeIndexIsSkipped(t *testing.T) {
	gen := &scriptedGen{}
	r := NewRewrite(gen, nil)

	st := state.New(state.Request{Query: "topic"})
	st.SubQuestions = []string{"a"}
	st.RejectedQuestions = []int{5, -1}

	delta, err := r.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if gen.calls != 0 {
		t.Fatalf("no rewrite should have been attempted")
	}
	if got := *delta.SubQuestions; got[0] != "a" {
		t.Fatalf("sub-questions changed: %v", got)
	}
}

func TestSynthesize_DedupsSourcesInFirstSeenOrder(t *testing.T) {
	gen := &scriptedGen{responses: []string{"structured notes"}}
	s := NewSynthesize(gen, nil)

	st := state.New(state.Request{Query: "q"})
	st.GradedResults = []state.SearchResult{
		{URL: "https://b.test"},
		{URL: "https://a.test"},
		{URL: "https://b.test"},
		{URL: ""},
	}

	delta, err := s.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	sources := *delta.Sources
	if len(sources) != 2 || sources[0] != "https://b.test" || sources[1] != "https://a.test" {
		t.Fatalf("dedup order wrong: %v", sources)
	}
	if *delta.ResearchNotes != "structured notes" {
		t.Fatalf("notes not set")
	}
}

func TestDraft_IncludesFeedbackAndClearsIt(t *testing.T) {
	gen := &scriptedGen{responses: []string{"# Article\n\nrevised body"}}
	d := NewDraft(gen, nil)

	st := state.New(state.Request{Query: "q", Tone: constants.ToneCasual, WordCount: 800})
	st.ResearchNotes = "notes"
	st.HumanFeedback = "add more examples"

	delta, err := d.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(gen.prompts[0], "add more examples") {
		t.Fatalf("feedback not in prompt:\n%s", gen.prompts[0])
	}
	if *delta.HumanFeedback != "" {
		t.Fatalf("feedback must be cleared after use")
	}
	if *delta.ArticleDraft == "" {
		t.Fatalf("draft not set")
	}
}

func TestEvaluate_ParsesScoreAndBumpsCounter(t *testing.T) {
	gen := &scriptedGen{responses: []string{
		`{"coverage_score": 20, "factual_score": 22, "structure_score": 23, "tone_score": 21, "total_score": 86, "feedback": "Approved"}`,
	}}
	e := NewEvaluate(gen, nil)

	st := state.New(state.Request{Query: "q"})
	st.ArticleDraft = "draft"
	st.WriteIterations = 0

	delta, err := e.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if *delta.QualityScore != 86 || *delta.QualityFeedback != "Approved" {
		t.Fatalf("verdict wrong: score=%v feedback=%q", *delta.QualityScore, *delta.QualityFeedback)
	}
	if *delta.WriteIterations != 1 {
		t.Fatalf("write counter = %d, want 1", *delta.WriteIterations)
	}
}

func TestEvaluate_FallsBackAboveThreshold(t *testing.T) {
	for name, gen := range map[string]*scriptedGen{
		"backend error": {errs: []error{errors.New("down")}},
		"no json":       {responses: []string{"I liked it a lot."}},
		"bad shape":     {responses: []string{`{"total_score": 300}`}},
	} {
		t.Run(name, func(t *testing.T) {
			e := NewEvaluate(gen, nil)
			st := state.New(state.Request{Query: "q"})
			st.WriteIterations = 1

			delta, err := e.Run(context.Background(), st)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if *delta.QualityScore != fallbackScore {
				t.Fatalf("fallback score = %v, want %v", *delta.QualityScore, fallbackScore)
			}
			if *delta.QualityScore < constants.QualityThreshold {
				t.Fatalf("fallback must clear the threshold so review is reached")
			}
			if *delta.WriteIterations != 2 {
				t.Fatalf("counter must still advance, got %d", *delta.WriteIterations)
			}
		})
	}
}

type fakeExporter struct {
	path    string
	err     error
	lastFmt constants.ExportFormat
}

func (f *fakeExporter) Export(_ context.Context, _ string, _ []string, format constants.ExportFormat, _ string) (string, error) {
	f.lastFmt = format
	return f.path, f.err
}

func TestPublish_SetsExportPath(t *testing.T) {
	exp := &fakeExporter{path: "/outputs/article.md"}
	p := NewPublish(exp, nil)

	st := state.New(state.Request{Query: "q", ExportFormat: constants.FormatDocx})
	st.FinalArticle = "final"

	delta, err := p.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if *delta.ExportPath != "/outputs/article.md" {
		t.Fatalf("export path not recorded: %v", *delta.ExportPath)
	}
	if exp.lastFmt != constants.FormatDocx {
		t.Fatalf("format not forwarded: %v", exp.lastFmt)
	}
}

func TestPublish_ExportErrorFailsStage(t *testing.T) {
	exp := &fakeExporter{err: fmt.Errorf("disk full")}
	p := NewPublish(exp, nil)

	st := state.New(state.Request{Query: "q"})
	if _, err := p.Run(context.Background(), st); err == nil {
		t.Fatalf("expected export error to propagate")
	}
}

func TestBuildReviewPayload_SnapshotsReviewFields(t *testing.T) {
	st := state.New(state.Request{Query: "q"})
	st.ArticleDraft = "draft"
	st.QualityScore = 81
	st.Sources = []string{"https://a.test"}

	p := BuildReviewPayload(st)
	st.Sources[0] = "mutated"

	if p.ArticleDraft != "draft" || p.QualityScore != 81 {
		t.Fatalf("payload wrong: %+v", p)
	}
	if p.Sources[0] != "https://a.test" {
		t.Fatalf("payload shares slice with state")
	}
}
