package state

import "github.com/joseph-ayodele/research-agent/constants"

// Delta is a partial state update returned by a stage. A nil field means
// "leave as is"; a set field fully replaces the current value, including the
// counters. Stages that advance a counter compute current+1 and set it, so
// applying the same delta twice lands on the same state as applying it once.
type Delta struct {
	SubQuestions      *[]string
	SearchResults     *[]SearchResult
	GradedResults     *[]SearchResult
	RejectedQuestions *[]int
	Sources           *[]string

	ResearchNotes   *string
	ArticleDraft    *string
	QualityScore    *float64
	QualityFeedback *string

	HumanDecision *constants.Decision
	HumanFeedback *string

	FinalArticle *string
	ExportPath   *string

	SearchIterations *int
	WriteIterations  *int
}

// Apply merges d into s, overwriting each set field.
func (s *PipelineState) Apply(d Delta) {
	if d.SubQuestions != nil {
		s.SubQuestions = *d.SubQuestions
	}
	if d.SearchResults != nil {
		s.SearchResults = *d.SearchResults
	}
	if d.GradedResults != nil {
		s.GradedResults = *d.GradedResults
	}
	if d.RejectedQuestions != nil {
		s.RejectedQuestions = *d.RejectedQuestions
	}
	if d.Sources != nil {
		s.Sources = *d.Sources
	}
	if d.ResearchNotes != nil {
		s.ResearchNotes = *d.ResearchNotes
	}
	if d.ArticleDraft != nil {
		s.ArticleDraft = *d.ArticleDraft
	}
	if d.QualityScore != nil {
		s.QualityScore = *d.QualityScore
	}
	if d.QualityFeedback != nil {
		s.QualityFeedback = *d.QualityFeedback
	}
	if d.HumanDecision != nil {
		s.HumanDecision = *d.HumanDecision
	}
	if d.HumanFeedback != nil {
		s.HumanFeedback = *d.HumanFeedback
	}
	if d.FinalArticle != nil {
		s.FinalArticle = *d.FinalArticle
	}
	if d.ExportPath != nil {
		s.ExportPath = *d.ExportPath
	}
	if d.SearchIterations != nil {
		s.SearchIterations = *d.SearchIterations
	}
	if d.WriteIterations != nil {
		s.WriteIterations = *d.WriteIterations
	}
}

// Fields names the state fields this delta touches, for progress events.
func (d Delta) Fields() []string {
	var out []string
	add := func(set bool, name string) {
		if set {
			out = append(out, name)
		}
	}
	add(d.SubQuestions != nil, "sub_questions")
	add(d.SearchResults != nil, "search_results")
	add(d.GradedResults != nil, "graded_results")
	add(d.RejectedQuestions != nil, "rejected_questions")
	add(d.Sources != nil, "sources")
	add(d.ResearchNotes != nil, "research_notes")
	add(d.ArticleDraft != nil, "article_draft")
	add(d.QualityScore != nil, "quality_score")
	add(d.QualityFeedback != nil, "quality_feedback")
	add(d.HumanDecision != nil, "human_decision")
	add(d.HumanFeedback != nil, "human_feedback")
	add(d.FinalArticle != nil, "final_article")
	add(d.ExportPath != nil, "export_path")
	add(d.SearchIterations != nil, "search_iterations")
	add(d.WriteIterations != nil, "write_iterations")
	return out
}

// Ptr helpers keep stage code free of one-line temporaries.
func Str(v string) *string                      { return &v }
func Int(v int) *int                            { return &v }
func Float(v float64) *float64                  { return &v }
func Strings(v []string) *[]string              { return &v }
func Ints(v []int) *[]int                       { return &v }
func Results(v []SearchResult) *[]SearchResult  { return &v }
func DecisionOf(v constants.Decision) *constants.Decision { return &v }
