package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cefr-platform/backend/internal/content"
	"github.com/cefr-platform/backend/internal/models"
	"github.com/cefr-platform/backend/internal/scoring"
	"github.com/cefr-platform/backend/internal/writing"
)

// Question counts served per objective section.
const (
	readingDraw   = 10
	listeningDraw = 10
)

var (
	ErrSessionCompleted = errors.New("session already completed")
	ErrSectionScored    = errors.New("section already submitted")
)

type Service struct {
	store     *Store
	content   *content.Store
	cache     *Cache
	evaluator *writing.Evaluator
}

func NewService(store *Store, contentStore *content.Store, cache *Cache, evaluator *writing.Evaluator) *Service {
	return &Service{store: store, content: contentStore, cache: cache, evaluator: evaluator}
}

// StartTest creates a session and draws its question set: random reading and
// listening questions plus one writing prompt of each kind.
func (s *Service) StartTest(ctx context.Context) (*models.StartTestResponse, error) {
	sess, err := s.store.CreateSession(uuid.NewString())
	if err != nil {
		return nil, err
	}

	reading, err := s.content.RandomReadingQuestions(readingDraw)
	if err != nil {
		return nil, err
	}
	listening, err := s.content.RandomListeningQuestions(listeningDraw)
	if err != nil {
		return nil, err
	}

	var prompts []models.WritingPrompt
	for _, kind := range []models.TaskKind{models.TaskTransactional, models.TaskReview, models.TaskEssay} {
		p, err := s.content.RandomWritingPrompt(kind)
		if err != nil {
			return nil, fmt.Errorf("no %s prompt available: %w", kind, err)
		}
		prompts = append(prompts, *p)
	}

	s.cache.Set(ctx, sess)

	return &models.StartTestResponse{
		SessionID:          sess.SessionID,
		ReadingQuestions:   reading,
		ListeningQuestions: listening,
		WritingPrompts:     prompts,
	}, nil
}

// SubmitObjective grades one reading or listening section against the stored
// answer key. Comparison is case-insensitive on the option letter.
func (s *Service) SubmitObjective(ctx context.Context, sessionID string, req models.SubmitObjectiveRequest) (*models.SubmitObjectiveResponse, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == models.SessionCompleted {
		return nil, ErrSessionCompleted
	}
	if alreadyScored(sess, req.Section) {
		return nil, ErrSectionScored
	}

	score := 0
	for _, ans := range req.Answers {
		correct, err := s.content.CorrectAnswer(req.Section, ans.QuestionID)
		if err != nil {
			return nil, err
		}
		isCorrect := strings.EqualFold(strings.TrimSpace(ans.Answer), correct)
		if isCorrect {
			score++
		}
		if err := s.store.SaveAnswer(sessionID, req.Section, ans.QuestionID, ans.Answer, isCorrect); err != nil {
			return nil, err
		}
	}

	total := len(req.Answers)
	if err := s.store.UpdateSectionScore(sessionID, req.Section, score, total); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, sessionID)

	percentage := 0.0
	if total > 0 {
		percentage = float64(score) / float64(total) * 100.0
	}
	return &models.SubmitObjectiveResponse{
		Section:    req.Section,
		Score:      score,
		Total:      total,
		Percentage: percentage,
	}, nil
}

// SubmitWriting builds the three-task submission from the served prompts and
// runs the full evaluation pipeline. The complete evaluation is persisted as
// the session's writing feedback.
func (s *Service) SubmitWriting(ctx context.Context, sessionID string, req models.SubmitWritingRequest) (*models.WritingEvaluation, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == models.SessionCompleted {
		return nil, ErrSessionCompleted
	}

	sub, err := s.buildSubmission(req)
	if err != nil {
		return nil, err
	}

	evaluation, err := s.evaluator.Evaluate(ctx, *sub)
	if err != nil {
		return nil, err
	}

	feedback, err := json.Marshal(evaluation)
	if err != nil {
		return nil, fmt.Errorf("encode evaluation: %w", err)
	}
	if err := s.store.SaveWritingResult(sessionID, evaluation.OverallScore, evaluation.OverallPercentage, string(feedback)); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, sessionID)

	return evaluation, nil
}

// CompleteSession closes the session and computes the final weighted CEFR
// level from the three section percentages.
func (s *Service) CompleteSession(ctx context.Context, sessionID string) (*models.SessionResult, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == models.SessionCompleted {
		return nil, ErrSessionCompleted
	}

	result := scoring.SessionOverall(
		sectionPercentage(sess.ReadingScore, sess.ReadingTotal),
		sectionPercentage(sess.ListeningScore, sess.ListeningTotal),
		sess.WritingPercentage,
		scoring.DefaultSessionWeights,
	)
	result.SessionID = sessionID

	if err := s.store.CompleteSession(sessionID, result.CEFRLevel); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, sessionID)

	return &result, nil
}

// GetResult returns the final outcome of a completed session.
func (s *Service) GetResult(ctx context.Context, sessionID string) (*models.SessionResult, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != models.SessionCompleted {
		return nil, fmt.Errorf("session %s is not completed", sessionID)
	}

	result := scoring.SessionOverall(
		sectionPercentage(sess.ReadingScore, sess.ReadingTotal),
		sectionPercentage(sess.ListeningScore, sess.ListeningTotal),
		sess.WritingPercentage,
		scoring.DefaultSessionWeights,
	)
	result.SessionID = sessionID
	return &result, nil
}

func (s *Service) buildSubmission(req models.SubmitWritingRequest) (*models.Submission, error) {
	task1, err := s.taskFromPrompt(req.Task1PromptID, req.Task1Text)
	if err != nil {
		return nil, err
	}
	task2, err := s.taskFromPrompt(req.Task2PromptID, req.Task2Text)
	if err != nil {
		return nil, err
	}
	essay, err := s.taskFromPrompt(req.EssayPromptID, req.EssayText)
	if err != nil {
		return nil, err
	}
	if essay.Kind != models.TaskEssay {
		return nil, fmt.Errorf("prompt %d is not an essay prompt", req.EssayPromptID)
	}
	return &models.Submission{Task1: *task1, Task2: *task2, Essay: *essay}, nil
}

func (s *Service) taskFromPrompt(promptID int64, text string) (*models.WritingTask, error) {
	p, err := s.content.GetWritingPrompt(promptID)
	if err != nil {
		return nil, err
	}
	return &models.WritingTask{
		Kind:         p.TaskKind,
		Instructions: p.PromptText,
		MinWords:     p.MinWords,
		MaxWords:     p.MaxWords,
		Text:         text,
	}, nil
}

// getSession checks the cache before Postgres and repopulates it on a miss.
func (s *Service) getSession(ctx context.Context, sessionID string) (*models.TestSession, error) {
	if sess, ok := s.cache.Get(ctx, sessionID); ok {
		return sess, nil
	}
	sess, err := s.store.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, sess)
	return sess, nil
}

func alreadyScored(sess *models.TestSession, section models.QuestionSection) bool {
	if section == models.SectionListening {
		return sess.ListeningTotal > 0
	}
	return sess.ReadingTotal > 0
}

func sectionPercentage(score, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(score) / float64(total) * 100.0
}
