package writing

import (
	"reflect"
	"testing"

	"github.com/cefr-platform/backend/internal/models"
)

func reviewTask(wordCount int) (models.WritingTask, models.LexicalFeatures) {
	task := models.WritingTask{Kind: models.TaskReview, MinWords: 80, MaxWords: 120}
	f := models.LexicalFeatures{
		WordCount:              wordCount,
		UniqueWordRatio:        0.55,
		SentenceCount:          7,
		AvgSentenceLength:      14,
		AlphaCharRatio:         0.85,
		RecognizableWordRatio:  0.80,
		HasLeadingCapital:      true,
		HasTerminalPunctuation: true,
	}
	return task, f
}

func TestScoreAlgorithmicInRange(t *testing.T) {
	task, f := reviewTask(100)
	score, notes := ScoreAlgorithmic(task, f)
	// Baseline 2, +1 length, +1 diversity, +1 sentence variety.
	if score != 5 {
		t.Errorf("score = %d, want 5", score)
	}
	if len(notes) == 0 {
		t.Error("expected explanatory notes")
	}
}

func TestScoreAlgorithmicLengthCeilings(t *testing.T) {
	task, f := reviewTask(39) // below half the minimum
	score, _ := ScoreAlgorithmic(task, f)
	if score != 2 {
		t.Errorf("far-under score = %d, want 2", score)
	}

	task, f = reviewTask(55) // below 70% of the minimum
	score, _ = ScoreAlgorithmic(task, f)
	if score != 3 {
		t.Errorf("well-under score = %d, want 3", score)
	}

	task, f = reviewTask(80) // exactly at the minimum
	score, _ = ScoreAlgorithmic(task, f)
	if score != 5 {
		t.Errorf("at-minimum score = %d, want 5", score)
	}
}

func TestScoreAlgorithmicMissingPunctuationCaps(t *testing.T) {
	task, f := reviewTask(100)
	f.HasTerminalPunctuation = false
	score, _ := ScoreAlgorithmic(task, f)
	if score != 2 {
		t.Errorf("score = %d, want 2 when terminal punctuation is missing", score)
	}
}

func TestScoreAlgorithmicEssayParagraphs(t *testing.T) {
	fourParagraphs := "First paragraph here.\n\nSecond paragraph here.\n\nThird paragraph here.\n\nFourth paragraph here."
	task := models.WritingTask{Kind: models.TaskEssay, MinWords: 150, MaxWords: 300, Text: fourParagraphs}
	f := models.LexicalFeatures{
		WordCount: 200, UniqueWordRatio: 0.55, AvgSentenceLength: 14,
		HasLeadingCapital: true, HasTerminalPunctuation: true,
	}
	score, _ := ScoreAlgorithmic(task, f)
	// Baseline 2, +1 length, +1 diversity, +1 sentences, +1 paragraphs.
	if score != 6 {
		t.Errorf("structured essay score = %d, want 6", score)
	}

	task.Text = "One single block of text with no paragraph breaks at all."
	score, _ = ScoreAlgorithmic(task, f)
	if score != 3 {
		t.Errorf("unstructured essay score = %d, want 3", score)
	}
}

func TestScoreAlgorithmicNeverNegative(t *testing.T) {
	task := models.WritingTask{Kind: models.TaskReview, MinWords: 80, MaxWords: 120}
	f := models.LexicalFeatures{
		WordCount:              39,
		UniqueWordRatio:        0.20,
		AvgSentenceLength:      3,
		DuplicateSentenceRatio: 0.25,
	}
	score, _ := ScoreAlgorithmic(task, f)
	if score != 0 {
		t.Errorf("score = %d, want 0 after clamping", score)
	}
}

func TestScoreAlgorithmicDeterministic(t *testing.T) {
	task, f := reviewTask(100)
	s1, n1 := ScoreAlgorithmic(task, f)
	s2, n2 := ScoreAlgorithmic(task, f)
	if s1 != s2 || !reflect.DeepEqual(n1, n2) {
		t.Errorf("identical input produced different output: (%d, %v) vs (%d, %v)", s1, n1, s2, n2)
	}
}

func TestCountParagraphs(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"one block", 1},
		{"a\n\nb", 2},
		{"a\n \n\nb\n\nc", 3},
		{"a\nb", 1}, // single newline is not a paragraph break
	}
	for _, tt := range tests {
		if got := countParagraphs(tt.text); got != tt.want {
			t.Errorf("countParagraphs(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestAlgorithmicFeedbackFields(t *testing.T) {
	cf := AlgorithmicFeedback(models.TaskEssay, 5, []string{"appropriate length for the task"})
	if cf.ScoringMethod != models.ScoredAlgorithmic {
		t.Errorf("ScoringMethod = %q, want algorithmic", cf.ScoringMethod)
	}
	if cf.TaskAchievement == "" || cf.Content != "" {
		t.Error("essay feedback should populate the essay field group only")
	}
	if cf.BandLabel == "" {
		t.Error("expected a band label")
	}

	cf = AlgorithmicFeedback(models.TaskReview, 4, nil)
	if cf.Content == "" || cf.TaskAchievement != "" {
		t.Error("review feedback should populate the short-task field group only")
	}
}
