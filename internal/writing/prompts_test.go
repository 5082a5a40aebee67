package writing

import (
	"strings"
	"testing"

	"github.com/cefr-platform/backend/internal/models"
)

func TestEvalSystemPromptMandatesJSON(t *testing.T) {
	p := EvalSystemPrompt()
	if !strings.Contains(p, "JSON") {
		t.Error("system prompt must mandate a JSON response")
	}
	if !strings.Contains(p, "0-9") {
		t.Error("system prompt must state the band scale")
	}
}

func TestBuildEvalPromptIncludesAllTexts(t *testing.T) {
	sub := models.Submission{
		Task1: models.WritingTask{Kind: models.TaskTransactional, Instructions: "Write to your landlord.", MinWords: 50, MaxWords: 80, Text: "Dear landlord, the heating is broken."},
		Task2: models.WritingTask{Kind: models.TaskReview, Instructions: "Review a film.", MinWords: 50, MaxWords: 80, Text: "The film was long but wonderful."},
		Essay: models.WritingTask{Kind: models.TaskEssay, Instructions: "Discuss remote work.", MinWords: 100, MaxWords: 200, Text: "Remote work changed many offices."},
	}
	p := BuildEvalPrompt(sub)

	for _, want := range []string{
		"Dear landlord, the heating is broken.",
		"The film was long but wonderful.",
		"Remote work changed many offices.",
		"Write to your landlord.",
		"expected 50-80 words",
		"expected 100-200 words",
		`"task_achievement"`,
		`"general_feedback"`,
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Word counts are computed locally, not left to the model.
	if !strings.Contains(p, "Candidate word count: 6") {
		t.Error("prompt missing the task1 word count")
	}
}

func TestBuildEvalPromptEmptyText(t *testing.T) {
	sub := models.Submission{
		Task1: models.WritingTask{Kind: models.TaskTransactional, MinWords: 50, MaxWords: 80},
		Task2: models.WritingTask{Kind: models.TaskReview, MinWords: 50, MaxWords: 80},
		Essay: models.WritingTask{Kind: models.TaskEssay, MinWords: 100, MaxWords: 200},
	}
	p := BuildEvalPrompt(sub)
	if !strings.Contains(p, "(empty)") {
		t.Error("empty responses should be marked explicitly")
	}
}
