package writing

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/cefr-platform/backend/internal/models"
	"github.com/cefr-platform/backend/internal/scoring"
)

// Evaluator runs the full writing assessment pipeline for one submission.
// Texts are pre-filtered by the validity classifier, valid texts go to the
// AI judgment in a single combined call, and any text the AI path cannot
// resolve falls back to the deterministic scorer. Evaluate therefore always
// produces a complete result when the submission itself is well-formed.
type Evaluator struct {
	client *Client
}

func NewEvaluator(client *Client) *Evaluator {
	return &Evaluator{client: client}
}

// Evaluate assesses all three texts of a submission. The only errors it
// returns are malformed task definitions and context cancellation; provider
// failures, unparseable responses, and missing configuration all degrade to
// the algorithmic scorer instead.
func (e *Evaluator) Evaluate(ctx context.Context, sub models.Submission) (*models.WritingEvaluation, error) {
	if err := checkSubmission(sub); err != nil {
		return nil, err
	}

	tasks := [3]models.WritingTask{sub.Task1, sub.Task2, sub.Essay}
	var feats [3]models.LexicalFeatures
	var verdicts [3]models.ValidityVerdict
	anyValid := false
	for i, t := range tasks {
		feats[i] = Extract(t.Text)
		verdicts[i] = Classify(feats[i])
		if !verdicts[i].Worthless {
			anyValid = true
		}
	}

	// One combined AI call covers every valid text. Capped texts are still
	// included in the prompt for context but their scores are already fixed.
	var judgment *RawJudgment
	providerName := ""
	if anyValid && e.client != nil && e.client.Configured() {
		raw, name, err := e.client.Evaluate(ctx, EvalSystemPrompt(), BuildEvalPrompt(sub))
		switch {
		case err != nil && ctx.Err() != nil:
			return nil, err
		case err != nil:
			log.Printf("WARN: AI evaluation unavailable, using algorithmic scoring: %v", err)
		default:
			if j, ok := ExtractJudgment(raw); ok {
				judgment = j
				providerName = name
			} else {
				log.Printf("WARN: could not recover a judgment from %s response, using algorithmic scoring", name)
			}
		}
	}

	var criteria [3]map[string]interface{}
	if judgment != nil {
		criteria = [3]map[string]interface{}{judgment.Task1, judgment.Task2, judgment.Essay}
	}

	// Per-text resolution is independent, so the three run concurrently.
	var feedback [3]models.CriterionFeedback
	var g errgroup.Group
	for i := range tasks {
		i := i
		g.Go(func() error {
			feedback[i] = resolveText(tasks[i], feats[i], verdicts[i], criteria[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	aiUsed := false
	for _, cf := range feedback {
		if cf.ScoringMethod == models.ScoredAI {
			aiUsed = true
		}
	}

	evaluatedBy := "algorithmic"
	if aiUsed {
		evaluatedBy = providerName
	}

	general := ""
	if aiUsed && judgment != nil {
		general = strings.TrimSpace(judgment.GeneralFeedback)
	}
	if general == "" {
		general = generalFallback(verdicts)
	}

	score, percentage := scoring.WritingOverall(feedback[0].Score, feedback[1].Score, feedback[2].Score)
	band := scoring.LevelFor(percentage)

	return &models.WritingEvaluation{
		Task1:             feedback[0],
		Task2:             feedback[1],
		Essay:             feedback[2],
		OverallScore:      score,
		OverallPercentage: percentage,
		CEFRLevel:         band.Level,
		GeneralFeedback:   general,
		EvaluatedBy:       evaluatedBy,
	}, nil
}

// resolveText picks the scoring path for one text: the capped score when the
// classifier rejected it, the normalized AI judgment when one is usable, and
// the algorithmic scorer otherwise.
func resolveText(task models.WritingTask, f models.LexicalFeatures, v models.ValidityVerdict, criterion map[string]interface{}) models.CriterionFeedback {
	if v.Worthless {
		return cappedFeedback(task.Kind, v)
	}
	if criterion != nil {
		if cf, ok := NormalizeCriterion(task.Kind, criterion); ok {
			return cf
		}
	}
	score, notes := ScoreAlgorithmic(task, f)
	return AlgorithmicFeedback(task.Kind, score, notes)
}

func cappedFeedback(kind models.TaskKind, v models.ValidityVerdict) models.CriterionFeedback {
	msg := "Not assessed: " + v.Reason + "."
	cf := models.CriterionFeedback{
		Score:         float64(v.CappedScore),
		BandLabel:     BandLabel(float64(v.CappedScore)),
		ScoringMethod: models.ScoredCapped,
	}
	if kind == models.TaskEssay {
		cf.TaskAchievement = msg
	} else {
		cf.Content = msg
	}
	return cf
}

func checkSubmission(sub models.Submission) error {
	for _, t := range []models.WritingTask{sub.Task1, sub.Task2, sub.Essay} {
		if !models.ValidTaskKinds[t.Kind] {
			return fmt.Errorf("unknown task kind %q", t.Kind)
		}
		if t.MinWords < 0 || t.MaxWords < 0 {
			return fmt.Errorf("negative word limit for %s task", t.Kind)
		}
		if t.MaxWords > 0 && t.MaxWords < t.MinWords {
			return fmt.Errorf("inverted word range for %s task: min %d, max %d", t.Kind, t.MinWords, t.MaxWords)
		}
	}
	return nil
}

func generalFallback(verdicts [3]models.ValidityVerdict) string {
	allCapped := true
	for _, v := range verdicts {
		if !v.Worthless {
			allCapped = false
		}
	}
	if allCapped {
		return "None of the submitted texts could be assessed. Please write original responses that address each task."
	}
	return "Assessed automatically based on measurable features of the writing, such as length, vocabulary range, and sentence structure."
}
