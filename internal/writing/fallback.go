package writing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cefr-platform/backend/internal/models"
)

var paragraphSplitter = regexp.MustCompile(`\n\s*\n`)

// ScoreAlgorithmic grades a text that passed the validity classifier when no
// AI judgment is available. It is fully deterministic: identical input always
// yields the identical score and notes, so the output can be golden-tested.
//
// The score starts at a fixed baseline and accumulates bounded adjustments;
// caps collected along the way and the final clamp keep it in [0, 9].
func ScoreAlgorithmic(task models.WritingTask, f models.LexicalFeatures) (int, []string) {
	score := 2
	ceiling := 9
	var notes []string

	// Word-count band relative to the task's expected range.
	switch {
	case task.MinWords > 0 && f.WordCount < task.MinWords/2:
		ceiling = minInt(ceiling, 2)
		notes = append(notes, fmt.Sprintf("far below the minimum of %d words", task.MinWords))
	case task.MinWords > 0 && f.WordCount < task.MinWords*7/10:
		ceiling = minInt(ceiling, 3)
		notes = append(notes, fmt.Sprintf("well below the minimum of %d words", task.MinWords))
	case f.WordCount >= task.MinWords && (task.MaxWords == 0 || f.WordCount <= task.MaxWords):
		score++
		notes = append(notes, "appropriate length for the task")
	case task.MaxWords > 0 && f.WordCount > task.MaxWords*13/10:
		score--
		notes = append(notes, fmt.Sprintf("well over the maximum of %d words", task.MaxWords))
	}

	// Vocabulary diversity.
	if f.UniqueWordRatio < 0.30 {
		ceiling = minInt(ceiling, 3)
		notes = append(notes, "very limited vocabulary range")
	} else if f.UniqueWordRatio >= 0.50 {
		score++
		notes = append(notes, "good vocabulary variety")
	}

	// Sentence construction.
	if f.AvgSentenceLength < 5 {
		score--
		notes = append(notes, "sentences are too short and simplistic")
	} else if f.AvgSentenceLength >= 10 && f.AvgSentenceLength <= 18 {
		score++
		notes = append(notes, "good sentence variety")
	}

	// Mechanics.
	if !f.HasLeadingCapital {
		score--
		notes = append(notes, "missing capitalization at the start")
	}
	if !f.HasTerminalPunctuation {
		score--
		ceiling = minInt(ceiling, 2)
		notes = append(notes, "missing sentence-ending punctuation")
	}

	// Paragraph structure applies to essays only.
	if task.Kind == models.TaskEssay {
		paragraphs := countParagraphs(task.Text)
		if paragraphs < 3 {
			ceiling = minInt(ceiling, 3)
			notes = append(notes, "essay lacks paragraph structure")
		} else if paragraphs >= 4 {
			score++
			notes = append(notes, "well-organized paragraph structure")
		}
	}

	// Moderate repetition that slipped past the validity classifier.
	if f.DuplicateSentenceRatio > 0.20 {
		score -= 2
		notes = append(notes, "noticeable sentence repetition")
	} else if f.DuplicateSentenceRatio > 0.10 {
		score--
		notes = append(notes, "some sentence repetition")
	}

	if score > ceiling {
		score = ceiling
	}
	if score < 0 {
		score = 0
	}
	if score > 9 {
		score = 9
	}
	return score, notes
}

// countParagraphs counts blank-line separated blocks of text.
func countParagraphs(text string) int {
	count := 0
	for _, p := range paragraphSplitter.Split(strings.TrimSpace(text), -1) {
		if strings.TrimSpace(p) != "" {
			count++
		}
	}
	return count
}

// AlgorithmicFeedback shapes the scorer's notes into the per-kind qualitative
// fields of a CriterionFeedback.
func AlgorithmicFeedback(kind models.TaskKind, score int, notes []string) models.CriterionFeedback {
	summary := "Automatically assessed on length, vocabulary, and sentence structure."
	if len(notes) > 0 {
		summary = "Automatic assessment: " + strings.Join(notes, "; ") + "."
	}

	cf := models.CriterionFeedback{
		Score:         float64(score),
		BandLabel:     BandLabel(float64(score)),
		ScoringMethod: models.ScoredAlgorithmic,
	}
	if kind == models.TaskEssay {
		cf.TaskAchievement = summary
		cf.CoherenceCohesion = "Assessed from sentence and paragraph structure."
		cf.LexicalResource = "Assessed from vocabulary diversity."
		cf.GrammaticalRange = "Not individually assessed without the AI evaluator."
	} else {
		cf.Content = summary
		cf.Organization = "Assessed from sentence structure."
		cf.Language = "Assessed from vocabulary diversity."
		cf.Accuracy = "Not individually assessed without the AI evaluator."
	}
	return cf
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
