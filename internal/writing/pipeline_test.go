package writing

import (
	"context"
	"strings"
	"testing"

	"github.com/cefr-platform/backend/internal/models"
)

const letterText = "Dear John, thank you for your letter. I was very happy to read " +
	"about your new job in the city. Last weekend my family visited a small " +
	"restaurant near the park and the food was delicious. We talked about " +
	"our holiday plans for the summer. I hope you can come with us this " +
	"year. Please write soon and tell me about your work."

const reviewText = "I visited this restaurant last month with my friends. The food " +
	"was delicious and the staff were very friendly. We ordered three different " +
	"things and every one was excellent. The price was a little high but the " +
	"quality was wonderful. I would recommend this place to people who like " +
	"good food and a comfortable room."

const essayText = "Many people believe that technology has changed education in " +
	"important ways. I agree with this opinion because students can now find " +
	"information quickly and learn new things every day.\n\n" +
	"Firstly, the internet gives students free books and interesting examples. " +
	"When I was young, my school had only a small number of books, but today " +
	"every student with a computer can read about any question.\n\n" +
	"Secondly, technology helps teachers. They can answer questions quickly " +
	"and give good examples in class. However, some people say that students " +
	"play games too much and do not study.\n\n" +
	"In my opinion, the good things are more important than the problems. " +
	"Technology makes learning easy and interesting, so schools should use it well."

func validSubmission() models.Submission {
	return models.Submission{
		Task1: models.WritingTask{Kind: models.TaskTransactional, Instructions: "Write a letter to a friend.", MinWords: 50, MaxWords: 80, Text: letterText},
		Task2: models.WritingTask{Kind: models.TaskReview, Instructions: "Review a restaurant you visited.", MinWords: 50, MaxWords: 80, Text: reviewText},
		Essay: models.WritingTask{Kind: models.TaskEssay, Instructions: "Has technology improved education?", MinWords: 100, MaxWords: 200, Text: essayText},
	}
}

func judgedClient(resp string) (*Client, *fakeProvider) {
	p := &fakeProvider{name: "scripted", models: []string{"m"}, resp: resp}
	return NewClient([]Provider{p}, 0), p
}

func TestEvaluateAlgorithmicWhenNoProvider(t *testing.T) {
	e := NewEvaluator(NewClient(nil, 0))
	result, err := e.Evaluate(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EvaluatedBy != "algorithmic" {
		t.Errorf("EvaluatedBy = %q, want algorithmic", result.EvaluatedBy)
	}
	for _, cf := range []models.CriterionFeedback{result.Task1, result.Task2, result.Essay} {
		if cf.ScoringMethod != models.ScoredAlgorithmic {
			t.Errorf("ScoringMethod = %q, want algorithmic", cf.ScoringMethod)
		}
		if cf.Score < 0 || cf.Score > 9 {
			t.Errorf("Score = %f out of range", cf.Score)
		}
	}
	if result.CEFRLevel == "" || result.GeneralFeedback == "" {
		t.Error("expected a level and general feedback even without a provider")
	}
}

func TestEvaluateUsesProviderJudgment(t *testing.T) {
	c, p := judgedClient(`{
	  "task1": {"score": 7, "content": "Good letter."},
	  "task2": {"score": 6, "content": "Solid review."},
	  "essay": {"score": 6.5, "task_achievement": "Addresses the question."},
	  "general_feedback": "A strong performance."
	}`)
	e := NewEvaluator(c)

	result, err := e.Evaluate(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EvaluatedBy != "scripted" {
		t.Errorf("EvaluatedBy = %q, want scripted", result.EvaluatedBy)
	}
	if len(p.calls) != 1 {
		t.Errorf("provider calls = %d, want one combined call", len(p.calls))
	}
	if result.Task1.Score != 7 || result.Task1.ScoringMethod != models.ScoredAI {
		t.Errorf("Task1 = %+v", result.Task1)
	}
	// 7*0.25 + 6*0.25 + 6.5*0.5 = 6.5 -> 72.2% -> B2
	if result.OverallScore != 6.5 {
		t.Errorf("OverallScore = %f, want 6.5", result.OverallScore)
	}
	if result.CEFRLevel != "B2" {
		t.Errorf("CEFRLevel = %q, want B2", result.CEFRLevel)
	}
	if result.GeneralFeedback != "A strong performance." {
		t.Errorf("GeneralFeedback = %q", result.GeneralFeedback)
	}
}

func TestEvaluateCappedTextKeepsCappedScore(t *testing.T) {
	c, _ := judgedClient(`{
	  "task1": {"score": 9, "content": "Excellent."},
	  "task2": {"score": 6, "content": "Solid review."},
	  "essay": {"score": 6.5, "task_achievement": "Addresses the question."},
	  "general_feedback": "Strong."
	}`)
	e := NewEvaluator(c)

	sub := validSubmission()
	sub.Task1.Text = "Too short."
	result, err := e.Evaluate(context.Background(), sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The classifier's cap is authoritative; the AI's 9 for task1 is ignored.
	if result.Task1.Score != 0 || result.Task1.ScoringMethod != models.ScoredCapped {
		t.Errorf("Task1 = %+v, want capped at 0", result.Task1)
	}
	if result.Task2.ScoringMethod != models.ScoredAI || result.Essay.ScoringMethod != models.ScoredAI {
		t.Error("valid texts should still use the AI judgment")
	}
}

func TestEvaluatePartialNormalizationFallsBack(t *testing.T) {
	// task2 has no usable score; only that text falls back.
	c, _ := judgedClient(`{
	  "task1": {"score": 7, "content": "Good letter."},
	  "task2": {"content": "No score given."},
	  "essay": {"score": 6.5, "task_achievement": "Addresses the question."}
	}`)
	e := NewEvaluator(c)

	result, err := e.Evaluate(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Task1.ScoringMethod != models.ScoredAI {
		t.Errorf("Task1 method = %q, want ai", result.Task1.ScoringMethod)
	}
	if result.Task2.ScoringMethod != models.ScoredAlgorithmic {
		t.Errorf("Task2 method = %q, want algorithmic", result.Task2.ScoringMethod)
	}
	if result.EvaluatedBy != "scripted" {
		t.Errorf("EvaluatedBy = %q, want scripted while any AI score survives", result.EvaluatedBy)
	}
}

func TestEvaluateUnparseableResponseFallsBack(t *testing.T) {
	c, _ := judgedClient("I am unable to produce JSON today.")
	e := NewEvaluator(c)

	result, err := e.Evaluate(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EvaluatedBy != "algorithmic" {
		t.Errorf("EvaluatedBy = %q, want algorithmic", result.EvaluatedBy)
	}
	for _, cf := range []models.CriterionFeedback{result.Task1, result.Task2, result.Essay} {
		if cf.ScoringMethod != models.ScoredAlgorithmic {
			t.Errorf("ScoringMethod = %q, want algorithmic", cf.ScoringMethod)
		}
	}
}

func TestEvaluateAllWorthlessSkipsProvider(t *testing.T) {
	c, p := judgedClient(wellFormedJudgment)
	e := NewEvaluator(c)

	sub := validSubmission()
	sub.Task1.Text = "asdf qwer zxcv"
	sub.Task2.Text = "ok ok ok"
	sub.Essay.Text = ""
	result, err := e.Evaluate(context.Background(), sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.calls) != 0 {
		t.Error("no provider call should be made when every text is worthless")
	}
	for _, cf := range []models.CriterionFeedback{result.Task1, result.Task2, result.Essay} {
		if cf.ScoringMethod != models.ScoredCapped {
			t.Errorf("ScoringMethod = %q, want capped", cf.ScoringMethod)
		}
	}
	if result.OverallScore != 0 || result.OverallPercentage != 0 {
		t.Errorf("overall = (%f, %f), want zero", result.OverallScore, result.OverallPercentage)
	}
	if result.CEFRLevel != "A1" {
		t.Errorf("CEFRLevel = %q, want A1", result.CEFRLevel)
	}
	if !strings.Contains(result.GeneralFeedback, "None of the submitted texts") {
		t.Errorf("GeneralFeedback = %q", result.GeneralFeedback)
	}
}

func TestEvaluateRejectsMalformedTasks(t *testing.T) {
	e := NewEvaluator(NewClient(nil, 0))

	sub := validSubmission()
	sub.Task2.MinWords = 200
	sub.Task2.MaxWords = 100
	if _, err := e.Evaluate(context.Background(), sub); err == nil {
		t.Error("expected an error for an inverted word range")
	}

	sub = validSubmission()
	sub.Essay.Kind = "poem"
	if _, err := e.Evaluate(context.Background(), sub); err == nil {
		t.Error("expected an error for an unknown task kind")
	}

	sub = validSubmission()
	sub.Task1.MinWords = -5
	if _, err := e.Evaluate(context.Background(), sub); err == nil {
		t.Error("expected an error for a negative word limit")
	}
}
