package constants

// StageID identifies one node of the research pipeline graph. The set is
// closed: the engine's transition table is keyed on these and nothing else.
type StageID string

const (
	StageDecompose  StageID = "decompose"  // break query into sub-questions
	StageSearch     StageID = "search"     // web search per sub-question
	StageGrade      StageID = "grade"      // score results 1-5, accept >= 3
	StageRewrite    StageID = "rewrite"    // reformulate sub-questions with no accepted results
	StageSynthesize StageID = "synthesize" // condense accepted results into notes
	StageDraft      StageID = "draft"      // write the article from notes
	StageEvaluate   StageID = "evaluate"   // score the draft 0-100
	StageReview     StageID = "review"     // human checkpoint (suspends)
	StagePublish    StageID = "publish"    // export the approved article
	StageEnd        StageID = "end"        // terminal marker, never executed
)

// Stages lists every executable stage in graph order (StageEnd excluded).
var Stages = []StageID{
	StageDecompose,
	StageSearch,
	StageGrade,
	StageRewrite,
	StageSynthesize,
	StageDraft,
	StageEvaluate,
	StageReview,
	StagePublish,
}

// Iteration ceilings. The routers enforce these by redirecting forward, the
// stages only record the counters.
const (
	MaxSearchIterations = 3
	MaxWriteIterations  = 2
)

// QualityThreshold is the evaluate score at or above which a draft goes
// straight to human review.
const QualityThreshold = 70.0
