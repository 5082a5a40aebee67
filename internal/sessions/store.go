package sessions

import (
	"database/sql"
	"fmt"

	"github.com/cefr-platform/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateSession(sessionID string) (*models.TestSession, error) {
	var sess models.TestSession
	err := s.db.QueryRow(
		`INSERT INTO test_sessions (session_id, status)
		 VALUES ($1, $2)
		 RETURNING id, session_id, status, started_at`,
		sessionID, models.SessionInProgress,
	).Scan(&sess.ID, &sess.SessionID, &sess.Status, &sess.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &sess, nil
}

func (s *Store) GetSession(sessionID string) (*models.TestSession, error) {
	var sess models.TestSession
	var feedback, level sql.NullString
	var completedAt sql.NullTime
	err := s.db.QueryRow(
		`SELECT id, session_id, status, reading_score, reading_total,
		        listening_score, listening_total, writing_score, writing_percentage,
		        writing_feedback, overall_level, started_at, completed_at
		 FROM test_sessions WHERE session_id = $1`,
		sessionID,
	).Scan(&sess.ID, &sess.SessionID, &sess.Status, &sess.ReadingScore, &sess.ReadingTotal,
		&sess.ListeningScore, &sess.ListeningTotal, &sess.WritingScore, &sess.WritingPercentage,
		&feedback, &level, &sess.StartedAt, &completedAt)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", sessionID, err)
	}
	sess.WritingFeedback = feedback.String
	sess.OverallLevel = level.String
	if completedAt.Valid {
		sess.CompletedAt = &completedAt.Time
	}
	return &sess, nil
}

func (s *Store) UpdateSectionScore(sessionID string, section models.QuestionSection, score, total int) error {
	column := "reading"
	if section == models.SectionListening {
		column = "listening"
	}
	_, err := s.db.Exec(
		fmt.Sprintf(`UPDATE test_sessions SET %s_score = $1, %s_total = $2 WHERE session_id = $3`, column, column),
		score, total, sessionID,
	)
	if err != nil {
		return fmt.Errorf("update %s score: %w", section, err)
	}
	return nil
}

func (s *Store) SaveAnswer(sessionID string, section models.QuestionSection, questionID int64, userAnswer string, isCorrect bool) error {
	_, err := s.db.Exec(
		`INSERT INTO test_answers (session_id, section, question_id, user_answer, is_correct)
		 VALUES ($1, $2, $3, $4, $5)`,
		sessionID, section, questionID, userAnswer, isCorrect,
	)
	if err != nil {
		return fmt.Errorf("save answer: %w", err)
	}
	return nil
}

func (s *Store) SaveWritingResult(sessionID string, score, percentage float64, feedbackJSON string) error {
	_, err := s.db.Exec(
		`UPDATE test_sessions
		 SET writing_score = $1, writing_percentage = $2, writing_feedback = $3
		 WHERE session_id = $4`,
		score, percentage, feedbackJSON, sessionID,
	)
	if err != nil {
		return fmt.Errorf("save writing result: %w", err)
	}
	return nil
}

func (s *Store) CompleteSession(sessionID, overallLevel string) error {
	_, err := s.db.Exec(
		`UPDATE test_sessions
		 SET status = $1, overall_level = $2, completed_at = NOW()
		 WHERE session_id = $3`,
		models.SessionCompleted, overallLevel, sessionID,
	)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	return nil
}

func (s *Store) ListAnswers(sessionID string) ([]models.AnswerRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, section, question_id, user_answer, is_correct, created_at
		 FROM test_answers WHERE session_id = $1 ORDER BY created_at`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	var answers []models.AnswerRecord
	for rows.Next() {
		var a models.AnswerRecord
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Section, &a.QuestionID,
			&a.UserAnswer, &a.IsCorrect, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}
