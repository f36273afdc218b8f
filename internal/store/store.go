package store

import (
	"context"
	"errors"

	"github.com/trivia-api/backend/internal/domain/category"
	"github.com/trivia-api/backend/internal/domain/question"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store is the persistence boundary for the trivia catalog.
// List methods return records ordered by id ascending.
type Store interface {
	SaveCategory(ctx context.Context, cat *category.Category) error
	GetCategory(ctx context.Context, id int) (*category.Category, error)
	ListCategories(ctx context.Context) ([]*category.Category, error)

	// AddQuestion inserts q in its own transaction and sets q.ID.
	AddQuestion(ctx context.Context, q *question.Question) error
	GetQuestion(ctx context.Context, id int) (*question.Question, error)
	ListQuestions(ctx context.Context) ([]*question.Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int) ([]*question.Question, error)
	// DeleteQuestion removes the question in its own transaction.
	// It returns ErrNotFound when no row matched.
	DeleteQuestion(ctx context.Context, id int) error

	Close() error
}

// Open returns the Store for the given driver name ("sqlite" or "postgres").
func Open(driver, dsn string) (Store, error) {
	switch driver {
	case "", DriverSQLite:
		return NewSQLite(dsn)
	case DriverPostgres:
		return NewPostgres(dsn)
	default:
		return nil, errors.New("store: unknown driver " + driver)
	}
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)
