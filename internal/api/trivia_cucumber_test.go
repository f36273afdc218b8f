//go:build cucumber

package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/trivia-api/backend/internal/api"
	"github.com/trivia-api/backend/internal/domain/category"
	"github.com/trivia-api/backend/internal/domain/question"
	"github.com/trivia-api/backend/internal/domain/quiz"
	"github.com/trivia-api/backend/internal/service"
	"github.com/trivia-api/backend/internal/store"
)

// TestTriviaFeatures executes the trivia feature scenarios via godog.
func TestTriviaFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name: "trivia",
		ScenarioInitializer: func(ctx *godog.ScenarioContext) {
			initializeScenario(ctx, t)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{filepath.Join("..", "..", "features", "trivia.feature")},
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

func initializeScenario(ctx *godog.ScenarioContext, t *testing.T) {
	state := &triviaState{t: t}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		state.close()
		return ctx, nil
	})

	ctx.Step(`^the categories:$`, state.givenCategories)
	ctx.Step(`^(\d+) questions in category (\d+)$`, state.givenQuestions)
	ctx.Step(`^the question "([^"]*)" in category (\d+)$`, state.givenQuestion)
	ctx.Step(`^I request page (\d+) of questions$`, state.requestPage)
	ctx.Step(`^I search for "([^"]*)"$`, state.search)
	ctx.Step(`^I add the question "([^"]*)" with answer "([^"]*)" in category (\d+)$`, state.addQuestion)
	ctx.Step(`^I delete that question$`, state.deleteLast)
	ctx.Step(`^I play a quiz in category (\d+) for (\d+) rounds$`, state.playQuiz)
	ctx.Step(`^the response status is (\d+)$`, state.statusIs)
	ctx.Step(`^the response lists (\d+) questions$`, state.listsQuestions)
	ctx.Step(`^the total question count is (\d+)$`, state.totalIs)
	ctx.Step(`^the first (\d+) rounds served distinct questions from category (\d+)$`, state.roundsDistinct)
	ctx.Step(`^the last round served no question$`, state.lastRoundEmpty)
}

type triviaState struct {
	t      *testing.T
	dir    string
	store  store.Store
	router http.Handler

	last       *question.Question
	lastStatus int
	lastBody   map[string]any
	rounds     []*question.Question
}

func (s *triviaState) reset() error {
	s.close()
	s.dir = s.t.TempDir()
	db, err := store.NewSQLite(filepath.Join(s.dir, "trivia.db"))
	if err != nil {
		return err
	}
	s.store = db

	logger, _ := logtest.NewNullLogger()
	svc := service.NewTriviaService(db, quiz.NewSelector(), logger)
	s.router = api.NewRouter(api.RouterConfig{
		Handler: api.NewHandler(svc, logger),
		Logger:  logger,
	})
	s.last = nil
	s.lastStatus = 0
	s.lastBody = nil
	s.rounds = nil
	return nil
}

func (s *triviaState) close() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

func (s *triviaState) send(method, path, body string) error {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.lastStatus = rec.Code
	s.lastBody = map[string]any{}
	if rec.Body.Len() == 0 {
		return nil
	}
	return json.Unmarshal(rec.Body.Bytes(), &s.lastBody)
}

func (s *triviaState) givenCategories(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		id, err := strconv.Atoi(row.Cells[0].Value)
		if err != nil {
			return err
		}
		cat := &category.Category{ID: id, Type: row.Cells[1].Value}
		if err := s.store.SaveCategory(context.Background(), cat); err != nil {
			return err
		}
	}
	return nil
}

func (s *triviaState) givenQuestions(n, categoryID int) error {
	for i := 0; i < n; i++ {
		if err := s.givenQuestion(fmt.Sprintf("Question %d of category %d?", i, categoryID), categoryID); err != nil {
			return err
		}
	}
	return nil
}

func (s *triviaState) givenQuestion(text string, categoryID int) error {
	q := &question.Question{Question: text, Answer: "answer", Difficulty: 1, Category: categoryID}
	if err := s.store.AddQuestion(context.Background(), q); err != nil {
		return err
	}
	s.last = q
	return nil
}

func (s *triviaState) requestPage(page int) error {
	return s.send(http.MethodGet, fmt.Sprintf("/questions?page=%d", page), "")
}

func (s *triviaState) search(term string) error {
	body, _ := json.Marshal(map[string]string{"searchTerm": term})
	return s.send(http.MethodPost, "/questions", string(body))
}

func (s *triviaState) addQuestion(text, answer string, categoryID int) error {
	body, _ := json.Marshal(map[string]any{
		"question":   text,
		"answer":     answer,
		"difficulty": 1,
		"category":   categoryID,
	})
	return s.send(http.MethodPost, "/questions/add", string(body))
}

func (s *triviaState) deleteLast() error {
	if s.last == nil {
		return fmt.Errorf("no question to delete")
	}
	return s.send(http.MethodDelete, fmt.Sprintf("/questions/%d", s.last.ID), "")
}

func (s *triviaState) playQuiz(categoryID, rounds int) error {
	previous := []int{}
	for i := 0; i < rounds; i++ {
		body, _ := json.Marshal(map[string]any{
			"previous_questions": previous,
			"quiz_category":      map[string]any{"id": categoryID},
		})
		if err := s.send(http.MethodPost, "/quizzes", string(body)); err != nil {
			return err
		}
		if s.lastStatus != http.StatusOK {
			return fmt.Errorf("round %d: status %d", i+1, s.lastStatus)
		}
		raw, ok := s.lastBody["question"].(map[string]any)
		if !ok {
			s.rounds = append(s.rounds, nil)
			continue
		}
		q := &question.Question{
			ID:       int(raw["id"].(float64)),
			Category: int(raw["category"].(float64)),
		}
		s.rounds = append(s.rounds, q)
		previous = append(previous, q.ID)
	}
	return nil
}

func (s *triviaState) statusIs(status int) error {
	if s.lastStatus != status {
		return fmt.Errorf("expected status %d, got %d (%v)", status, s.lastStatus, s.lastBody)
	}
	return nil
}

func (s *triviaState) listsQuestions(n int) error {
	qs, ok := s.lastBody["questions"].([]any)
	if !ok {
		return fmt.Errorf("response has no questions list: %v", s.lastBody)
	}
	if len(qs) != n {
		return fmt.Errorf("expected %d questions, got %d", n, len(qs))
	}
	return nil
}

func (s *triviaState) totalIs(n int) error {
	if got, _ := s.lastBody["total_questions"].(float64); int(got) != n {
		return fmt.Errorf("expected total_questions %d, got %v", n, s.lastBody["total_questions"])
	}
	return nil
}

func (s *triviaState) roundsDistinct(n, categoryID int) error {
	if len(s.rounds) < n {
		return fmt.Errorf("only %d rounds played", len(s.rounds))
	}
	seen := map[int]bool{}
	for i, q := range s.rounds[:n] {
		if q == nil {
			return fmt.Errorf("round %d served no question", i+1)
		}
		if q.Category != categoryID {
			return fmt.Errorf("round %d served category %d", i+1, q.Category)
		}
		if seen[q.ID] {
			return fmt.Errorf("round %d repeated question %d", i+1, q.ID)
		}
		seen[q.ID] = true
	}
	return nil
}

func (s *triviaState) lastRoundEmpty() error {
	if len(s.rounds) == 0 || s.rounds[len(s.rounds)-1] != nil {
		return fmt.Errorf("expected the last round to serve no question")
	}
	return nil
}
