package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/trivia-api/backend/internal/domain/category"
	"github.com/trivia-api/backend/internal/domain/pagination"
	"github.com/trivia-api/backend/internal/domain/question"
	"github.com/trivia-api/backend/internal/domain/quiz"
	"github.com/trivia-api/backend/internal/domain/search"
	"github.com/trivia-api/backend/internal/store"
)

// Error kinds returned by TriviaService. Anything else is an unexpected
// failure.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrUnprocessable = errors.New("unprocessable")
)

// QuestionPage is one page of the id-ordered catalog.
type QuestionPage struct {
	Questions  []*question.Question
	Total      int
	Categories *category.Directory
}

// CategoryQuestions is every question filed under one category.
type CategoryQuestions struct {
	Category  *category.Category
	Questions []*question.Question
}

// NewQuestion carries the fields of a question to create.
type NewQuestion struct {
	Question   string
	Answer     string
	Difficulty int
	Category   int
}

// TriviaService answers catalog, search and quiz requests against a Store.
type TriviaService struct {
	store    store.Store
	selector *quiz.Selector
	logger   logrus.FieldLogger
}

func NewTriviaService(s store.Store, selector *quiz.Selector, logger logrus.FieldLogger) *TriviaService {
	if selector == nil {
		selector = quiz.NewSelector()
	}
	return &TriviaService{
		store:    s,
		selector: selector,
		logger:   logger,
	}
}

func (ts *TriviaService) Categories(ctx context.Context) (*category.Directory, error) {
	cats, err := ts.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return category.NewDirectory(cats), nil
}

// QuestionsPage loads the full ordered catalog and returns the requested
// page of it along with the catalog size.
func (ts *TriviaService) QuestionsPage(ctx context.Context, page int) (*QuestionPage, error) {
	all, err := ts.store.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	dir, err := ts.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return &QuestionPage{
		Questions:  pagination.Paginate(page, pagination.QuestionsPerPage, all),
		Total:      len(all),
		Categories: dir,
	}, nil
}

// SearchQuestions returns every question whose text contains term,
// ignoring case. Results are not paginated.
func (ts *TriviaService) SearchQuestions(ctx context.Context, term string) ([]*question.Question, error) {
	if term == "" {
		return nil, fmt.Errorf("%w: search term is required", ErrValidation)
	}
	all, err := ts.store.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return search.Filter(term, all), nil
}

// QuestionsByCategory fails with ErrNotFound for an unknown category
// rather than returning an empty list.
func (ts *TriviaService) QuestionsByCategory(ctx context.Context, categoryID int) (*CategoryQuestions, error) {
	cat, err := ts.store.GetCategory(ctx, categoryID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	questions, err := ts.store.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions by category: %w", err)
	}
	return &CategoryQuestions{Category: cat, Questions: questions}, nil
}

// GetQuestion fetches one question by id. No route serves it; it backs
// read-after-write checks on created and deleted questions.
func (ts *TriviaService) GetQuestion(ctx context.Context, id int) (*question.Question, error) {
	q, err := ts.store.GetQuestion(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	return q, nil
}

// AddQuestion validates and persists a new question. The category is not
// required to exist.
func (ts *TriviaService) AddQuestion(ctx context.Context, in NewQuestion) (*question.Question, error) {
	q, err := question.New(in.Question, in.Answer, in.Difficulty, in.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if err := ts.store.AddQuestion(ctx, q); err != nil {
		return nil, fmt.Errorf("add question: %w", err)
	}

	ts.logger.WithFields(logrus.Fields{
		"question_id": q.ID,
		"category":    q.Category,
	}).Info("question created")
	return q, nil
}

// DeleteQuestion removes the question and returns its id.
func (ts *TriviaService) DeleteQuestion(ctx context.Context, id int) (int, error) {
	err := ts.store.DeleteQuestion(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return 0, fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("delete question: %w", err)
	}

	ts.logger.WithField("question_id", id).Info("question deleted")
	return id, nil
}

// NextQuizQuestion draws a random question in scope that is not in
// previous. A nil question with a nil error means the scope is exhausted.
// An unknown category is an empty scope, not an error.
func (ts *TriviaService) NextQuizQuestion(ctx context.Context, scope quiz.Scope, previous []int) (*question.Question, error) {
	var (
		pool []*question.Question
		err  error
	)
	if scope.IsAll() {
		pool, err = ts.store.ListQuestions(ctx)
	} else {
		pool, err = ts.store.ListQuestionsByCategory(ctx, scope.CategoryID())
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz pool: %w", err)
	}

	next := ts.selector.Next(pool, previous)
	if next == nil {
		ts.logger.WithFields(logrus.Fields{
			"scope":  int(scope),
			"served": len(previous),
		}).Debug("quiz exhausted")
	}
	return next, nil
}
