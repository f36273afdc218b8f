package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/trivia-api/backend/internal/domain/category"
	"github.com/trivia-api/backend/internal/domain/question"
)

// question.category deliberately has no foreign key: a question may
// reference a category that does not exist.
const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY,
    type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    difficulty INTEGER NOT NULL,
    category INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category);
`

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// A single connection serializes writers and keeps ":memory:"
	// databases from splitting across connections.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Categories
// ============================================================================

// SaveCategory inserts the category or renames the existing row with the same id.
func (s *SQLiteStore) SaveCategory(ctx context.Context, cat *category.Category) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, type) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET type = excluded.type`,
		cat.ID, cat.Type,
	)
	return err
}

func (s *SQLiteStore) GetCategory(ctx context.Context, id int) (*category.Category, error) {
	var cat category.Category
	err := s.db.QueryRowContext(ctx, "SELECT id, type FROM categories WHERE id = ?", id).Scan(&cat.ID, &cat.Type)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *SQLiteStore) ListCategories(ctx context.Context) ([]*category.Category, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, type FROM categories ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*category.Category{}
	for rows.Next() {
		var cat category.Category
		if err := rows.Scan(&cat.ID, &cat.Type); err != nil {
			return nil, err
		}
		categories = append(categories, &cat)
	}
	return categories, rows.Err()
}

// ============================================================================
// Questions
// ============================================================================

func (s *SQLiteStore) AddQuestion(ctx context.Context, q *question.Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"INSERT INTO questions (question, answer, difficulty, category) VALUES (?, ?, ?, ?)",
		q.Question, q.Answer, q.Difficulty, q.Category,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	q.ID = int(id)
	return nil
}

func (s *SQLiteStore) GetQuestion(ctx context.Context, id int) (*question.Question, error) {
	var q question.Question
	err := s.db.QueryRowContext(ctx,
		"SELECT id, question, answer, difficulty, category FROM questions WHERE id = ?", id,
	).Scan(&q.ID, &q.Question, &q.Answer, &q.Difficulty, &q.Category)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *SQLiteStore) ListQuestions(ctx context.Context) ([]*question.Question, error) {
	return s.queryQuestions(ctx,
		"SELECT id, question, answer, difficulty, category FROM questions ORDER BY id",
	)
}

func (s *SQLiteStore) ListQuestionsByCategory(ctx context.Context, categoryID int) ([]*question.Question, error) {
	return s.queryQuestions(ctx,
		"SELECT id, question, answer, difficulty, category FROM questions WHERE category = ? ORDER BY id",
		categoryID,
	)
}

func (s *SQLiteStore) queryQuestions(ctx context.Context, query string, args ...any) ([]*question.Question, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []*question.Question{}
	for rows.Next() {
		var q question.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Difficulty, &q.Category); err != nil {
			return nil, err
		}
		questions = append(questions, &q)
	}
	return questions, rows.Err()
}

func (s *SQLiteStore) DeleteQuestion(ctx context.Context, id int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE id = ?", id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}
