package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func Connect() (*sql.DB, error) {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "cefr_user")
	password := getEnv("DB_PASSWORD", "cefr_password")
	dbname := getEnv("DB_NAME", "cefr_platform")
	sslmode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS admins (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(50) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS reading_questions (
		id             BIGSERIAL PRIMARY KEY,
		passage        TEXT NOT NULL,
		question       TEXT NOT NULL,
		option_a       VARCHAR(500) NOT NULL,
		option_b       VARCHAR(500) NOT NULL,
		option_c       VARCHAR(500) NOT NULL,
		option_d       VARCHAR(500) NOT NULL,
		correct_answer VARCHAR(1) NOT NULL,
		difficulty     VARCHAR(2) NOT NULL,
		created_at     TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_reading_difficulty ON reading_questions(difficulty);

	CREATE TABLE IF NOT EXISTS listening_questions (
		id             BIGSERIAL PRIMARY KEY,
		audio_url      TEXT NOT NULL,
		transcript     TEXT,
		question       TEXT NOT NULL,
		option_a       VARCHAR(500) NOT NULL,
		option_b       VARCHAR(500) NOT NULL,
		option_c       VARCHAR(500) NOT NULL,
		option_d       VARCHAR(500) NOT NULL,
		correct_answer VARCHAR(1) NOT NULL,
		difficulty     VARCHAR(2) NOT NULL,
		created_at     TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_listening_difficulty ON listening_questions(difficulty);

	CREATE TABLE IF NOT EXISTS writing_prompts (
		id          BIGSERIAL PRIMARY KEY,
		prompt_text TEXT NOT NULL,
		task_kind   VARCHAR(20) NOT NULL,
		min_words   INT NOT NULL DEFAULT 0,
		max_words   INT NOT NULL DEFAULT 0,
		difficulty  VARCHAR(2) NOT NULL,
		created_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_prompts_kind ON writing_prompts(task_kind, difficulty);

	CREATE TABLE IF NOT EXISTS test_sessions (
		id                 BIGSERIAL PRIMARY KEY,
		session_id         VARCHAR(64) UNIQUE NOT NULL,
		status             VARCHAR(20) NOT NULL DEFAULT 'in_progress',
		reading_score      INT NOT NULL DEFAULT 0,
		reading_total      INT NOT NULL DEFAULT 0,
		listening_score    INT NOT NULL DEFAULT 0,
		listening_total    INT NOT NULL DEFAULT 0,
		writing_score      DECIMAL(4,2) NOT NULL DEFAULT 0,
		writing_percentage DECIMAL(5,2) NOT NULL DEFAULT 0,
		writing_feedback   TEXT,
		overall_level      VARCHAR(2),
		started_at         TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		completed_at       TIMESTAMP WITH TIME ZONE
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_session_id ON test_sessions(session_id);
	CREATE INDEX IF NOT EXISTS idx_sessions_status ON test_sessions(status);

	CREATE TABLE IF NOT EXISTS test_answers (
		id          BIGSERIAL PRIMARY KEY,
		session_id  VARCHAR(64) NOT NULL REFERENCES test_sessions(session_id) ON DELETE CASCADE,
		section     VARCHAR(20) NOT NULL,
		question_id BIGINT NOT NULL,
		user_answer VARCHAR(1) NOT NULL,
		is_correct  BOOLEAN NOT NULL,
		created_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_answers_session ON test_answers(session_id, section);

	CREATE TABLE IF NOT EXISTS survey_responses (
		id                      BIGSERIAL PRIMARY KEY,
		session_id              VARCHAR(64) NOT NULL REFERENCES test_sessions(session_id) ON DELETE CASCADE,
		overall_experience      INT NOT NULL CHECK (overall_experience >= 1 AND overall_experience <= 5),
		difficulty_rating       INT NOT NULL CHECK (difficulty_rating >= 1 AND difficulty_rating <= 5),
		would_recommend         BOOLEAN NOT NULL DEFAULT FALSE,
		feedback                TEXT,
		improvement_suggestions TEXT,
		age_group               VARCHAR(20),
		english_purpose         VARCHAR(50),
		created_at              TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_surveys_session ON survey_responses(session_id);
	`

	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	// Idempotent column additions for databases created before these fields
	// existed.
	alterStatements := []string{
		`ALTER TABLE writing_prompts ADD COLUMN IF NOT EXISTS min_words INT NOT NULL DEFAULT 0`,
		`ALTER TABLE writing_prompts ADD COLUMN IF NOT EXISTS max_words INT NOT NULL DEFAULT 0`,
		`ALTER TABLE test_sessions ADD COLUMN IF NOT EXISTS writing_feedback TEXT`,
		`ALTER TABLE test_sessions ADD COLUMN IF NOT EXISTS overall_level VARCHAR(2)`,
		`ALTER TABLE survey_responses ADD COLUMN IF NOT EXISTS age_group VARCHAR(20)`,
		`ALTER TABLE survey_responses ADD COLUMN IF NOT EXISTS english_purpose VARCHAR(50)`,
	}
	for _, stmt := range alterStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("alter table failed: %w", err)
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
