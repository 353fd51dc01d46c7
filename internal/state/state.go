// Package state defines the document that accumulates fields as pipeline
// stages run. Stages return partial Deltas; Apply merges them with
// overwrite-per-field semantics so replaying a delta is harmless.
package state

import (
	"github.com/joseph-ayodele/research-agent/constants"
)

// Request is the validated input that seeds a job's state.
type Request struct {
	Query        string                 `json:"query"`
	ExportFormat constants.ExportFormat `json:"export_format"`
	Tone         constants.Tone         `json:"tone"`
	WordCount    int                    `json:"word_count"`
}

// SearchResult is one ranked snippet, annotated as it moves through the
// research phase: the search stage tags the originating sub-question, the
// grade stage adds its score.
type SearchResult struct {
	Title            string  `json:"title"`
	Snippet          string  `json:"snippet"`
	URL              string  `json:"url"`
	RelevanceScore   float64 `json:"relevance_score"`
	SubQuestion      string  `json:"sub_question"`
	SubQuestionIndex int     `json:"sub_question_index"`
	GradeScore       int     `json:"grade_score,omitempty"`
	GradeReasoning   string  `json:"grade_reasoning,omitempty"`
}

// PipelineState is the full document. Later stages read earlier fields; a
// stage never edits a field in place, it returns a Delta that replaces it.
type PipelineState struct {
	// Input
	Query        string                 `json:"query"`
	ExportFormat constants.ExportFormat `json:"export_format"`
	Tone         constants.Tone         `json:"tone"`
	WordCount    int                    `json:"word_count"`

	// Research phase
	SubQuestions      []string       `json:"sub_questions"`
	SearchResults     []SearchResult `json:"search_results"`
	GradedResults     []SearchResult `json:"graded_results"`
	RejectedQuestions []int          `json:"rejected_questions"` // indices into SubQuestions
	Sources           []string       `json:"sources"`            // deduplicated, first-seen order

	// Writing phase
	ResearchNotes   string  `json:"research_notes"`
	ArticleDraft    string  `json:"article_draft"`
	QualityScore    float64 `json:"quality_score"`
	QualityFeedback string  `json:"quality_feedback"`

	// Human loop
	HumanDecision constants.Decision `json:"human_decision"`
	HumanFeedback string             `json:"human_feedback"`

	// Output
	FinalArticle string `json:"final_article"`
	ExportPath   string `json:"export_path"`

	// Bounded counters. Monotonically non-decreasing within a job; the
	// routers cap them by redirecting forward, never by erroring.
	SearchIterations int `json:"search_iterations"`
	WriteIterations  int `json:"write_iterations"`
}

// New seeds a fresh state from a validated request.
func New(req Request) PipelineState {
	return PipelineState{
		Query:        req.Query,
		ExportFormat: req.ExportFormat,
		Tone:         req.Tone,
		WordCount:    req.WordCount,
	}
}

// Clone returns a deep copy. Registry reads hand out clones so no caller can
// mutate the owned state behind the lock.
func (s PipelineState) Clone() PipelineState {
	out := s
	out.SubQuestions = append([]string(nil), s.SubQuestions...)
	out.SearchResults = append([]SearchResult(nil), s.SearchResults...)
	out.GradedResults = append([]SearchResult(nil), s.GradedResults...)
	out.RejectedQuestions = append([]int(nil), s.RejectedQuestions...)
	out.Sources = append([]string(nil), s.Sources...)
	return out
}
