package stages

import (
	"fmt"
	"strings"

	"github.com/joseph-ayodele/research-agent/internal/state"
)

func decomposePrompt(query string) string {
	return fmt.Sprintf(`You are a research planner. Break the topic below into 3-5 focused,
independently searchable sub-questions.

Topic: %s

Return ONLY JSON: {"sub_questions": ["...", "..."]}`, query)
}

func gradePrompt(r state.SearchResult) string {
	return fmt.Sprintf(`Grade how well this search result answers the research question.
Score 1-5: 5 = directly answers it, 3 = partially relevant, 1 = off-topic.

Question: %s
Title: %s
Snippet: %s
URL: %s

Return ONLY JSON: {"score": 3, "reasoning": "one sentence"}`, r.SubQuestion, r.Title, r.Snippet, r.URL)
}

func rewritePrompt(topic, rejected string) string {
	return fmt.Sprintf(`The search query below returned no usable results. Rewrite it with
different keywords and phrasing while keeping the intent, in the context of
the overall research topic.

Topic: %s
Failed query: %s

Return ONLY JSON: {"rewritten_query": "..."}`, topic, rejected)
}

func synthesizePrompt(results []state.SearchResult) string {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n---\n")
		}
		fmt.Fprintf(&b, "**Sub-Question:** %s\n**Source:** %s (%s)\n**Content:** %s\n**Quality Score:** %d/5\n",
			r.SubQuestion, r.Title, r.URL, r.Snippet, r.GradeScore)
	}
	return fmt.Sprintf(`Synthesize the graded research findings below into structured notes:
group by theme, keep source attributions, and flag contradictions between
sources. Only use the findings given.

%s`, b.String())
}

func draftPrompt(st state.PipelineState) string {
	var feedback string
	if st.HumanFeedback != "" {
		feedback = fmt.Sprintf(`
IMPORTANT - REVIEWER FEEDBACK TO INCORPORATE:
%s
`, st.HumanFeedback)
	} else if st.QualityFeedback != "" && st.WriteIterations > 0 {
		feedback = fmt.Sprintf(`
QUALITY FEEDBACK FROM THE PREVIOUS DRAFT:
%s
`, st.QualityFeedback)
	}
	return fmt.Sprintf(`Write a complete article from the research notes below.

Tone: %s
Target length: about %d words
Output format: %s headings (#, ##)
%s
Research notes:
%s`, st.Tone, st.WordCount, st.ExportFormat, feedback, st.ResearchNotes)
}

func evaluatePrompt(st state.PipelineState) string {
	return fmt.Sprintf(`Evaluate the article against the research notes on four dimensions,
each 0-25: coverage of the notes, factual consistency with the sources,
structure, and tone fit.

Article:
%s

Research notes:
%s

Sources:
%s

Return ONLY JSON:
{"coverage_score": 0, "factual_score": 0, "structure_score": 0, "tone_score": 0,
 "total_score": 0, "feedback": "actionable feedback, or 'Approved' if total >= 70"}`,
		st.ArticleDraft, st.ResearchNotes, strings.Join(st.Sources, "\n"))
}
