package constants

import "strings"

// ExportFormat is the requested output format for the final article.
type ExportFormat string

const (
	FormatMarkdown ExportFormat = "markdown"
	FormatMD       ExportFormat = "md"
	FormatDocx     ExportFormat = "docx"
	FormatNotion   ExportFormat = "notion"
)

var ExportFormats = []ExportFormat{FormatMarkdown, FormatMD, FormatDocx, FormatNotion}

// NormalizeFormat lowercases and maps "md" onto markdown. Unknown values are
// returned as-is; the export adapter falls back to markdown for those.
func NormalizeFormat(s string) ExportFormat {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	if f == FormatMD {
		return FormatMarkdown
	}
	return f
}

// Tone selects the article voice.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneTechnical    Tone = "technical"
)

var Tones = []Tone{ToneProfessional, ToneCasual, ToneTechnical}

// Decision is the human verdict at the review checkpoint.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionEdit    Decision = "edit"
	DecisionReject  Decision = "reject"
	DecisionUnset   Decision = ""
)

// ParseDecision normalizes free-form input. Anything unrecognized maps to
// approve so router C always has a defined branch.
func ParseDecision(s string) Decision {
	switch Decision(strings.ToLower(strings.TrimSpace(s))) {
	case DecisionEdit:
		return DecisionEdit
	case DecisionReject:
		return DecisionReject
	default:
		return DecisionApprove
	}
}

// Target word count bounds, validated before job creation.
const (
	MinWordCount = 500
	MaxWordCount = 2000
)
