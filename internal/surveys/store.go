package surveys

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

type SaveSurveyRequest struct {
	SessionID              string `json:"session_id"`
	OverallExperience      int    `json:"overall_experience"`
	DifficultyRating       int    `json:"difficulty_rating"`
	WouldRecommend         bool   `json:"would_recommend"`
	Feedback               string `json:"feedback"`
	ImprovementSuggestions string `json:"improvement_suggestions"`
	AgeGroup               string `json:"age_group"`
	EnglishPurpose         string `json:"english_purpose"`
}

func (s *Store) SaveSurvey(req SaveSurveyRequest) (*models.SurveyResponse, error) {
	var sr models.SurveyResponse
	err := s.db.QueryRow(
		`INSERT INTO survey_responses
		 (session_id, overall_experience, difficulty_rating, would_recommend, feedback, improvement_suggestions, age_group, english_purpose)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, session_id, overall_experience, difficulty_rating, would_recommend,
		           COALESCE(feedback, ''), COALESCE(improvement_suggestions, ''),
		           COALESCE(age_group, ''), COALESCE(english_purpose, ''), created_at`,
		req.SessionID, req.OverallExperience, req.DifficultyRating, req.WouldRecommend,
		req.Feedback, req.ImprovementSuggestions, req.AgeGroup, req.EnglishPurpose,
	).Scan(&sr.ID, &sr.SessionID, &sr.OverallExperience, &sr.DifficultyRating, &sr.WouldRecommend,
		&sr.Feedback, &sr.ImprovementSuggestions, &sr.AgeGroup, &sr.EnglishPurpose, &sr.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("save survey: %w", err)
	}
	return &sr, nil
}

// ListSurveys returns survey responses joined with the final level of the
// session they belong to.
func (s *Store) ListSurveys() ([]models.SurveyResponse, error) {
	rows, err := s.db.Query(
		`SELECT sr.id, sr.session_id, sr.overall_experience, sr.difficulty_rating, sr.would_recommend,
		        COALESCE(sr.feedback, ''), COALESCE(sr.improvement_suggestions, ''),
		        COALESCE(sr.age_group, ''), COALESCE(sr.english_purpose, ''),
		        COALESCE(ts.overall_level, ''), sr.created_at
		 FROM survey_responses sr
		 JOIN test_sessions ts ON ts.session_id = sr.session_id
		 ORDER BY sr.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}
	defer rows.Close()

	var surveys []models.SurveyResponse
	for rows.Next() {
		var sr models.SurveyResponse
		if err := rows.Scan(&sr.ID, &sr.SessionID, &sr.OverallExperience, &sr.DifficultyRating, &sr.WouldRecommend,
			&sr.Feedback, &sr.ImprovementSuggestions, &sr.AgeGroup, &sr.EnglishPurpose,
			&sr.OverallLevel, &sr.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan survey: %w", err)
		}
		surveys = append(surveys, sr)
	}
	return surveys, rows.Err()
}

// GetStatistics aggregates completed sessions and survey responses into the
// admin dashboard numbers.
func (s *Store) GetStatistics() (*models.PlatformStatistics, error) {
	stats := &models.PlatformStatistics{LevelDistribution: make(map[string]int)}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(AVG(CASE WHEN reading_total > 0 THEN reading_score::float / reading_total * 100 END), 0),
		        COALESCE(AVG(CASE WHEN listening_total > 0 THEN listening_score::float / listening_total * 100 END), 0),
		        COALESCE(AVG(writing_percentage), 0)
		 FROM test_sessions WHERE status = 'completed'`,
	).Scan(&stats.TotalTests, &stats.AvgReading, &stats.AvgListening, &stats.AvgWriting)
	if err != nil {
		return nil, fmt.Errorf("session statistics: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT overall_level, COUNT(*)
		 FROM test_sessions
		 WHERE status = 'completed' AND overall_level IS NOT NULL
		 GROUP BY overall_level`)
	if err != nil {
		return nil, fmt.Errorf("level distribution: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, fmt.Errorf("scan level distribution: %w", err)
		}
		stats.LevelDistribution[level] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(overall_experience), 0) FROM survey_responses`,
	).Scan(&stats.TotalSurveys, &stats.AvgExperience)
	if err != nil {
		return nil, fmt.Errorf("survey statistics: %w", err)
	}

	return stats, nil
}
