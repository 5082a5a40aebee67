package writing

import "testing"

const wellFormedJudgment = `{
  "task1": {"score": 7, "content": "Clear and complete."},
  "task2": {"score": 6, "content": "Mostly on task."},
  "essay": {"score": 6.5, "task_achievement": "Addresses the question."},
  "general_feedback": "A good performance overall."
}`

func TestExtractJudgmentDirectJSON(t *testing.T) {
	j, ok := ExtractJudgment(wellFormedJudgment)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if j.GeneralFeedback != "A good performance overall." {
		t.Errorf("GeneralFeedback = %q", j.GeneralFeedback)
	}
	if j.Task1["score"] != float64(7) {
		t.Errorf("task1 score = %v, want 7", j.Task1["score"])
	}
	if j.Essay["task_achievement"] != "Addresses the question." {
		t.Errorf("essay task_achievement = %v", j.Essay["task_achievement"])
	}
}

func TestExtractJudgmentCodeFences(t *testing.T) {
	j, ok := ExtractJudgment("```json\n" + wellFormedJudgment + "\n```")
	if !ok {
		t.Fatal("expected extraction from fenced block to succeed")
	}
	if j.Task2["score"] != float64(6) {
		t.Errorf("task2 score = %v, want 6", j.Task2["score"])
	}
}

func TestExtractJudgmentTrailingCommas(t *testing.T) {
	raw := `{"task1": {"score": 7,}, "task2": {"score": 6}, "essay": {"score": 5},}`
	j, ok := ExtractJudgment(raw)
	if !ok {
		t.Fatal("expected trailing commas to be repaired")
	}
	if j.Task1["score"] != float64(7) {
		t.Errorf("task1 score = %v, want 7", j.Task1["score"])
	}
}

func TestExtractJudgmentSurroundingProse(t *testing.T) {
	raw := "Here is my assessment of the candidate:\n" + wellFormedJudgment + "\nI hope this helps."
	j, ok := ExtractJudgment(raw)
	if !ok {
		t.Fatal("expected JSON embedded in prose to be recovered")
	}
	if j.Essay == nil {
		t.Error("essay criterion missing")
	}
}

func TestExtractJudgmentKeyVariants(t *testing.T) {
	raw := `{
	  "Task 1": {"score": 7},
	  "task_2": {"score": 6},
	  "ESSAY": {"score": 5},
	  "General Feedback": "Good work"
	}`
	j, ok := ExtractJudgment(raw)
	if !ok {
		t.Fatal("expected key variants to fold onto canonical names")
	}
	if j.Task1 == nil || j.Task2 == nil || j.Essay == nil {
		t.Errorf("folded keys incomplete: %+v", j)
	}
	if j.GeneralFeedback != "Good work" {
		t.Errorf("GeneralFeedback = %q, want %q", j.GeneralFeedback, "Good work")
	}
}

func TestExtractJudgmentRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"pure prose", "I think this candidate writes at roughly a B2 level."},
		{"empty", ""},
		{"scalar task values", `{"task1": 6, "task2": 6, "essay": 7}`},
		{"missing essay", `{"task1": {"score": 6}, "task2": {"score": 6}}`},
		{"top-level array", `[{"task1": {"score": 6}}]`},
	}
	for _, tt := range tests {
		if _, ok := ExtractJudgment(tt.raw); ok {
			t.Errorf("%s: expected extraction to fail", tt.name)
		}
	}
}

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"task1", "task1"},
		{"Task 1", "task1"},
		{"TASK_1", "task1"},
		{"task-2", "task2"},
		{" Essay ", "essay"},
		{"general_feedback", "generalfeedback"},
	}
	for _, tt := range tests {
		if got := canonicalKey(tt.in); got != tt.want {
			t.Errorf("canonicalKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
