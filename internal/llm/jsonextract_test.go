package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExtractJSON_Layers(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string // compacted JSON, "" means ErrNoJSON
	}{
		{
			name: "strict object",
			in:   `{"score": 4, "reasoning": "relevant"}`,
			want: `{"reasoning":"relevant","score":4}`,
		},
		{
			name: "strict array",
			in:   `["a", "b"]`,
			want: `["a","b"]`,
		},
		{
			name: "fenced with language tag",
			in:   "Here you go:\n```json\n{\"sub_questions\": [\"what is X?\"]}\n```\nHope that helps!",
			want: `{"sub_questions":["what is X?"]}`,
		},
		{
			name: "fenced without language tag",
			in:   "```\n{\"rewritten_query\": \"solar cell efficiency 2024\"}\n```",
			want: `{"rewritten_query":"solar cell efficiency 2024"}`,
		},
		{
			name: "object buried in prose",
			in:   `Sure! The grade is {"score": 2} because the snippet is off-topic.`,
			want: `{"score":2}`,
		},
		{
			name: "braces inside string literals",
			in:   `prefix {"feedback": "use {curly} braces", "total_score": 71} suffix`,
			want: `{"feedback":"use {curly} braces","total_score":71}`,
		},
		{
			name: "array buried in prose",
			in:   `The questions are ["q1?", "q2?"] as requested.`,
			want: `["q1?","q2?"]`,
		},
		{
			name: "bare scalar is not structured",
			in:   `42`,
			want: "",
		},
		{
			name: "no json at all",
			in:   "I could not produce a structured answer, sorry.",
			want: "",
		},
		{
			name: "unbalanced braces",
			in:   `{"score": 4`,
			want: "",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := ExtractJSON(tc.in)
			if tc.want == "" {
				if !errors.Is(err, ErrNoJSON) {
					t.Fatalf("expected ErrNoJSON, got raw=%s err=%v", raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := compact(t, raw)
			if got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestExtractInto_ShapeMismatchIsErrNoJSON(t *testing.T) {
	var out struct {
		Score int `json:"score"`
	}
	// Valid JSON, wrong shape for the target (array vs object).
	err := ExtractInto(`["not", "an", "object"]`, &out)
	if !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON, got %v", err)
	}
}

func TestExtractInto_PopulatesTarget(t *testing.T) {
	var out struct {
		SubQuestions []string `json:"sub_questions"`
	}
	in := "```json\n{\"sub_questions\": [\"a?\", \"b?\"]}\n```"
	if err := ExtractInto(in, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.SubQuestions) != 2 || out.SubQuestions[0] != "a?" {
		t.Fatalf("unexpected parse: %+v", out)
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	good := []byte(`{"score": 4, "reasoning": "on topic"}`)
	if err := ValidateJSONAgainstSchema(GradeSchema(), good); err != nil {
		t.Fatalf("valid grade rejected: %v", err)
	}

	bad := []byte(`{"score": 9}`)
	if err := ValidateJSONAgainstSchema(GradeSchema(), bad); err == nil {
		t.Fatalf("out-of-range score accepted")
	}

	missing := []byte(`{"reasoning": "no score"}`)
	if err := ValidateJSONAgainstSchema(GradeSchema(), missing); err == nil {
		t.Fatalf("missing required field accepted")
	}
}

func compact(t *testing.T, raw json.RawMessage) string {
	t.Helper()
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("raw is not valid JSON: %v", err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	return string(b)
}
