package models

// TaskKind identifies which kind of writing task a text answers.
// Thresholds and qualitative feedback fields differ by kind.
type TaskKind string

const (
	TaskTransactional TaskKind = "transactional"
	TaskReview        TaskKind = "review"
	TaskEssay         TaskKind = "essay"
)

var ValidTaskKinds = map[TaskKind]bool{
	TaskTransactional: true,
	TaskReview:        true,
	TaskEssay:         true,
}

// WritingTask is one candidate text together with the prompt it answers.
type WritingTask struct {
	Kind         TaskKind `json:"kind"`
	Instructions string   `json:"instructions"`
	MinWords     int      `json:"min_words"`
	MaxWords     int      `json:"max_words"`
	Text         string   `json:"text"`
}

// Submission is one complete writing section: a short transactional message,
// a review, and an essay. Immutable once received.
type Submission struct {
	Task1 WritingTask `json:"task1"`
	Task2 WritingTask `json:"task2"`
	Essay WritingTask `json:"essay"`
}

// LexicalFeatures are derived per text and never persisted.
type LexicalFeatures struct {
	WordCount              int
	UniqueWordRatio        float64
	SentenceCount          int
	AvgSentenceLength      float64
	AlphaCharRatio         float64
	TopTokenShare          float64
	BigramRepeatRatio      float64
	TrigramRepeatRatio     float64
	FourgramRepeatRatio    float64
	RecognizableWordRatio  float64
	DuplicateSentenceRatio float64
	HasLeadingCapital      bool
	HasTerminalPunctuation bool
}

// ValidityVerdict is the outcome of the heuristic pre-filter. When Worthless
// is true, CappedScore (0 or 1) is authoritative and no further scoring runs.
type ValidityVerdict struct {
	Worthless   bool   `json:"worthless"`
	CappedScore int    `json:"capped_score"`
	Reason      string `json:"reason,omitempty"`
}

// ScoringMethod records which path produced a text's score. Operators use it
// to distinguish "AI succeeded" from "fallback used".
type ScoringMethod string

const (
	ScoredCapped      ScoringMethod = "capped"
	ScoredAI          ScoringMethod = "ai"
	ScoredAlgorithmic ScoringMethod = "algorithmic"
)

// CriterionFeedback is the resolved judgment for one text. Exactly one of the
// two qualitative field groups is populated, depending on the task kind:
// content/organization/language/accuracy for transactional and review texts,
// task_achievement/coherence_cohesion/lexical_resource/grammatical_range for
// essays.
type CriterionFeedback struct {
	Score     float64 `json:"score"`
	BandLabel string  `json:"band_label"`

	Content      string `json:"content,omitempty"`
	Organization string `json:"organization,omitempty"`
	Language     string `json:"language,omitempty"`
	Accuracy     string `json:"accuracy,omitempty"`

	TaskAchievement   string `json:"task_achievement,omitempty"`
	CoherenceCohesion string `json:"coherence_cohesion,omitempty"`
	LexicalResource   string `json:"lexical_resource,omitempty"`
	GrammaticalRange  string `json:"grammatical_range,omitempty"`

	ScoringMethod ScoringMethod `json:"scoring_method"`
}

// WritingEvaluation is the aggregate result for one submission.
// Created once, immutable; the session layer owns persistence.
type WritingEvaluation struct {
	Task1 CriterionFeedback `json:"task1"`
	Task2 CriterionFeedback `json:"task2"`
	Essay CriterionFeedback `json:"essay"`

	OverallScore      float64 `json:"overall_score"`
	OverallPercentage float64 `json:"overall_percentage"`
	CEFRLevel         string  `json:"cefr_level"`
	GeneralFeedback   string  `json:"general_feedback"`

	// EvaluatedBy names the provider that produced the AI judgment, or
	// "algorithmic" when every non-capped text fell back.
	EvaluatedBy string `json:"evaluated_by"`
}
