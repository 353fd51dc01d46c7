package llm

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON means no layer could recover a JSON document from the model
// output. Callers switch to their documented fallback value when they see it.
var ErrNoJSON = errors.New("no JSON found in model output")

var reFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSON recovers a JSON object or array from free-form model output.
// Layers, in order:
//  1. strict parse of the whole text
//  2. the body of the first markdown code fence
//  3. the first brace-balanced {...} substring
//  4. the first bracket-balanced [...] substring
//
// Returns the raw JSON bytes of the first layer that parses, or ErrNoJSON.
func ExtractJSON(text string) (json.RawMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrNoJSON
	}

	if raw, ok := tryParse(text); ok {
		return raw, nil
	}

	if m := reFence.FindStringSubmatch(text); m != nil {
		if raw, ok := tryParse(m[1]); ok {
			return raw, nil
		}
	}

	if sub := balancedSubstring(text, '{', '}'); sub != "" {
		if raw, ok := tryParse(sub); ok {
			return raw, nil
		}
	}

	if sub := balancedSubstring(text, '[', ']'); sub != "" {
		if raw, ok := tryParse(sub); ok {
			return raw, nil
		}
	}

	return nil, ErrNoJSON
}

// ExtractInto runs ExtractJSON then unmarshals into out. A document that
// extracts but does not fit out's shape counts as ErrNoJSON for the caller.
func ExtractInto(text string, out any) error {
	raw, err := ExtractJSON(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return ErrNoJSON
	}
	return nil
}

func tryParse(s string) (json.RawMessage, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	switch v.(type) {
	case map[string]any, []any:
		return json.RawMessage(s), true
	default:
		// Bare scalars parse as JSON but are never the structured shape
		// a stage asked for.
		return nil, false
	}
}

// balancedSubstring returns the first substring starting at open and ending
// at its matching close, tracking JSON string literals so braces inside
// quoted text do not confuse the depth count.
func balancedSubstring(s string, open, close byte) string {
	start := strings.IndexByte(s, open)
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
