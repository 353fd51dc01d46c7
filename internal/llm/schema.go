package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schemas for the structured responses the stages expect. Validated before a
// response is trusted; a validation failure sends the stage to its fallback,
// it never fails the job.

// DecomposeSchema describes {"sub_questions": ["...", ...]}.
func DecomposeSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"sub_questions"},
		"properties": map[string]any{
			"sub_questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": 5,
				"items":    map[string]any{"type": "string", "minLength": 1},
			},
		},
	}
}

// GradeSchema describes {"score": 1..5, "reasoning": "..."}.
func GradeSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"score"},
		"properties": map[string]any{
			"score":     map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
			"reasoning": map[string]any{"type": "string"},
		},
	}
}

// RewriteSchema describes {"rewritten_query": "..."}.
func RewriteSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"rewritten_query"},
		"properties": map[string]any{
			"rewritten_query": map[string]any{"type": "string", "minLength": 1},
		},
	}
}

// EvaluateSchema describes the quality verdict with per-dimension scores.
func EvaluateSchema() map[string]any {
	dim := map[string]any{"type": "number", "minimum": 0, "maximum": 25}
	return map[string]any{
		"type":     "object",
		"required": []string{"total_score"},
		"properties": map[string]any{
			"coverage_score":  dim,
			"factual_score":   dim,
			"structure_score": dim,
			"tone_score":      dim,
			"total_score":     map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			"feedback":        map[string]any{"type": "string"},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
