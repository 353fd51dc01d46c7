package state

import (
	"reflect"
	"testing"

	"github.com/joseph-ayodele/research-agent/constants"
)

func TestApply_OverwritesOnlySetFields(t *testing.T) {
	s := New(Request{Query: "solar panels", ExportFormat: constants.FormatMarkdown, Tone: constants.ToneProfessional, WordCount: 1000})
	s.SubQuestions = []string{"a", "b"}
	s.ResearchNotes = "old notes"

	s.Apply(Delta{
		ResearchNotes: Str("new notes"),
		Sources:       Strings([]string{"https://x.test/1"}),
	})

	if s.ResearchNotes != "new notes" {
		t.Fatalf("expected overwritten notes, got %q", s.ResearchNotes)
	}
	if !reflect.DeepEqual(s.SubQuestions, []string{"a", "b"}) {
		t.Fatalf("untouched field changed: %v", s.SubQuestions)
	}
	if !reflect.DeepEqual(s.Sources, []string{"https://x.test/1"}) {
		t.Fatalf("sources not applied: %v", s.Sources)
	}
	if s.Query != "solar panels" || s.WordCount != 1000 {
		t.Fatalf("input fields must survive apply")
	}
}

func TestApply_SameDeltaTwiceIsIdempotent(t *testing.T) {
	d := Delta{
		GradedResults:    Results([]SearchResult{{Title: "t", URL: "u", GradeScore: 4}}),
		SearchIterations: Int(2),
		QualityScore:     Float(81),
	}

	once := New(Request{Query: "q"})
	once.Apply(d)

	twice := New(Request{Query: "q"})
	twice.Apply(d)
	twice.Apply(d)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("apply is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
	if twice.SearchIterations != 2 {
		t.Fatalf("counter must be an overwrite, got %d", twice.SearchIterations)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	s := New(Request{Query: "q"})
	s.SubQuestions = []string{"a"}
	s.GradedResults = []SearchResult{{Title: "t"}}

	c := s.Clone()
	c.SubQuestions[0] = "mutated"
	c.GradedResults[0].Title = "mutated"

	if s.SubQuestions[0] != "a" || s.GradedResults[0].Title != "t" {
		t.Fatalf("clone shares backing arrays with original")
	}
}

func TestDelta_FieldsNamesTouchedFields(t *testing.T) {
	d := Delta{
		ArticleDraft:    Str("draft"),
		WriteIterations: Int(1),
		HumanDecision:   DecisionOf(constants.DecisionEdit),
	}
	got := d.Fields()
	want := []string{"article_draft", "human_decision", "write_iterations"}
	if len(got) != len(want) {
		t.Fatalf("fields = %v, want %v", got, want)
	}
	for _, w := range want {
		found := false
		for _, g := range got {
			if g == w {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing field %q in %v", w, got)
		}
	}
}
