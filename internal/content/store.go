package content

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

// ── Reading questions ───────────────────────────────────

func (s *Store) AddReadingQuestion(req models.AddReadingQuestionRequest) (*models.ReadingQuestion, error) {
	var q models.ReadingQuestion
	err := s.db.QueryRow(
		`INSERT INTO reading_questions (passage, question, option_a, option_b, option_c, option_d, correct_answer, difficulty)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, passage, question, option_a, option_b, option_c, option_d, correct_answer, difficulty, created_at`,
		req.Passage, req.Question, req.OptionA, req.OptionB, req.OptionC, req.OptionD, req.CorrectAnswer, req.Difficulty,
	).Scan(&q.ID, &q.Passage, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD,
		&q.CorrectAnswer, &q.Difficulty, &q.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add reading question: %w", err)
	}
	return &q, nil
}

func (s *Store) ListReadingQuestions() ([]models.ReadingQuestion, error) {
	rows, err := s.db.Query(
		`SELECT id, passage, question, option_a, option_b, option_c, option_d, correct_answer, difficulty, created_at
		 FROM reading_questions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list reading questions: %w", err)
	}
	defer rows.Close()

	var questions []models.ReadingQuestion
	for rows.Next() {
		var q models.ReadingQuestion
		if err := rows.Scan(&q.ID, &q.Passage, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD,
			&q.CorrectAnswer, &q.Difficulty, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reading question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// RandomReadingQuestions draws up to limit questions. Correct answers are
// omitted so the rows can be served to candidates directly.
func (s *Store) RandomReadingQuestions(limit int) ([]models.ReadingQuestion, error) {
	rows, err := s.db.Query(
		`SELECT id, passage, question, option_a, option_b, option_c, option_d, difficulty, created_at
		 FROM reading_questions ORDER BY RANDOM() LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("draw reading questions: %w", err)
	}
	defer rows.Close()

	var questions []models.ReadingQuestion
	for rows.Next() {
		var q models.ReadingQuestion
		if err := rows.Scan(&q.ID, &q.Passage, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD,
			&q.Difficulty, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reading question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *Store) DeleteReadingQuestion(id int64) error {
	return s.deleteByID("reading_questions", id)
}

// ── Listening questions ─────────────────────────────────

func (s *Store) AddListeningQuestion(req models.AddListeningQuestionRequest) (*models.ListeningQuestion, error) {
	var q models.ListeningQuestion
	err := s.db.QueryRow(
		`INSERT INTO listening_questions (audio_url, transcript, question, option_a, option_b, option_c, option_d, correct_answer, difficulty)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, audio_url, COALESCE(transcript, ''), question, option_a, option_b, option_c, option_d, correct_answer, difficulty, created_at`,
		req.AudioURL, req.Transcript, req.Question, req.OptionA, req.OptionB, req.OptionC, req.OptionD, req.CorrectAnswer, req.Difficulty,
	).Scan(&q.ID, &q.AudioURL, &q.Transcript, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD,
		&q.CorrectAnswer, &q.Difficulty, &q.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add listening question: %w", err)
	}
	return &q, nil
}

func (s *Store) ListListeningQuestions() ([]models.ListeningQuestion, error) {
	rows, err := s.db.Query(
		`SELECT id, audio_url, COALESCE(transcript, ''), question, option_a, option_b, option_c, option_d, correct_answer, difficulty, created_at
		 FROM listening_questions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list listening questions: %w", err)
	}
	defer rows.Close()

	var questions []models.ListeningQuestion
	for rows.Next() {
		var q models.ListeningQuestion
		if err := rows.Scan(&q.ID, &q.AudioURL, &q.Transcript, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD,
			&q.CorrectAnswer, &q.Difficulty, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan listening question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// RandomListeningQuestions draws up to limit questions without answers or
// transcripts, which would give the answers away.
func (s *Store) RandomListeningQuestions(limit int) ([]models.ListeningQuestion, error) {
	rows, err := s.db.Query(
		`SELECT id, audio_url, question, option_a, option_b, option_c, option_d, difficulty, created_at
		 FROM listening_questions ORDER BY RANDOM() LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("draw listening questions: %w", err)
	}
	defer rows.Close()

	var questions []models.ListeningQuestion
	for rows.Next() {
		var q models.ListeningQuestion
		if err := rows.Scan(&q.ID, &q.AudioURL, &q.Question, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD,
			&q.Difficulty, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan listening question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *Store) DeleteListeningQuestion(id int64) error {
	return s.deleteByID("listening_questions", id)
}

// ── Writing prompts ─────────────────────────────────────

func (s *Store) AddWritingPrompt(req models.AddWritingPromptRequest) (*models.WritingPrompt, error) {
	var p models.WritingPrompt
	err := s.db.QueryRow(
		`INSERT INTO writing_prompts (prompt_text, task_kind, min_words, max_words, difficulty)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, prompt_text, task_kind, min_words, max_words, difficulty, created_at`,
		req.PromptText, req.TaskKind, req.MinWords, req.MaxWords, req.Difficulty,
	).Scan(&p.ID, &p.PromptText, &p.TaskKind, &p.MinWords, &p.MaxWords, &p.Difficulty, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add writing prompt: %w", err)
	}
	return &p, nil
}

func (s *Store) ListWritingPrompts() ([]models.WritingPrompt, error) {
	rows, err := s.db.Query(
		`SELECT id, prompt_text, task_kind, min_words, max_words, difficulty, created_at
		 FROM writing_prompts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list writing prompts: %w", err)
	}
	defer rows.Close()

	var prompts []models.WritingPrompt
	for rows.Next() {
		var p models.WritingPrompt
		if err := rows.Scan(&p.ID, &p.PromptText, &p.TaskKind, &p.MinWords, &p.MaxWords, &p.Difficulty, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan writing prompt: %w", err)
		}
		prompts = append(prompts, p)
	}
	return prompts, rows.Err()
}

func (s *Store) GetWritingPrompt(id int64) (*models.WritingPrompt, error) {
	var p models.WritingPrompt
	err := s.db.QueryRow(
		`SELECT id, prompt_text, task_kind, min_words, max_words, difficulty, created_at
		 FROM writing_prompts WHERE id = $1`, id,
	).Scan(&p.ID, &p.PromptText, &p.TaskKind, &p.MinWords, &p.MaxWords, &p.Difficulty, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get writing prompt %d: %w", id, err)
	}
	return &p, nil
}

// RandomWritingPrompt draws one prompt of the given kind.
func (s *Store) RandomWritingPrompt(kind models.TaskKind) (*models.WritingPrompt, error) {
	var p models.WritingPrompt
	err := s.db.QueryRow(
		`SELECT id, prompt_text, task_kind, min_words, max_words, difficulty, created_at
		 FROM writing_prompts WHERE task_kind = $1 ORDER BY RANDOM() LIMIT 1`, kind,
	).Scan(&p.ID, &p.PromptText, &p.TaskKind, &p.MinWords, &p.MaxWords, &p.Difficulty, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("draw %s prompt: %w", kind, err)
	}
	return &p, nil
}

func (s *Store) DeleteWritingPrompt(id int64) error {
	return s.deleteByID("writing_prompts", id)
}

// ── Grading support ─────────────────────────────────────

// CorrectAnswer looks up the stored answer key for one objective question.
func (s *Store) CorrectAnswer(section models.QuestionSection, questionID int64) (string, error) {
	table := "reading_questions"
	if section == models.SectionListening {
		table = "listening_questions"
	}
	var answer string
	err := s.db.QueryRow(
		fmt.Sprintf(`SELECT correct_answer FROM %s WHERE id = $1`, table), questionID,
	).Scan(&answer)
	if err != nil {
		return "", fmt.Errorf("answer key for %s question %d: %w", section, questionID, err)
	}
	return answer, nil
}

func (s *Store) deleteByID(table string, id int64) error {
	result, err := s.db.Exec(fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
