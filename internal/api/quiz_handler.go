package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/trivia-api/backend/internal/domain/question"
	"github.com/trivia-api/backend/internal/domain/quiz"
	"github.com/trivia-api/backend/internal/service"
)

type QuizCategory struct {
	ID   *FlexInt `json:"id" swaggertype:"integer" example:"0"`
	Type string   `json:"type,omitempty" example:"click"`
}

// UnmarshalJSON treats a null or blank id as absent, so it never reads
// as the all-categories scope.
func (c *QuizCategory) UnmarshalJSON(data []byte) error {
	type plain QuizCategory
	var raw struct {
		plain
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = QuizCategory(raw.plain)
	c.ID = nil
	if blankJSON(raw.ID) {
		return nil
	}
	var id FlexInt
	if err := id.UnmarshalJSON(raw.ID); err != nil {
		return err
	}
	c.ID = &id
	return nil
}

type QuizRequest struct {
	PreviousQuestions []FlexInt     `json:"previous_questions" swaggertype:"array,integer"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

type QuizResponse struct {
	Success  bool               `json:"success" example:"true"`
	Question *question.Question `json:"question"`
}

// scope resolves the quiz category; id 0 means every category.
func (req *QuizRequest) scope() (quiz.Scope, error) {
	if req.QuizCategory == nil || req.QuizCategory.ID == nil {
		return 0, fmt.Errorf("%w: quiz_category is required", service.ErrValidation)
	}
	return quiz.Scope(*req.QuizCategory.ID), nil
}

// nextQuizQuestion serves a random question the player has not seen.
// @Summary      Next quiz question
// @Description  Picks a random question from quiz_category (id 0 = all categories) excluding previous_questions. question is null once the scope is exhausted.
// @Tags         Quizzes
// @Accept       json
// @Produce      json
// @Param        body  body      QuizRequest  true  "Quiz state"
// @Success      200   {object}  QuizResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /quizzes [post]
func (h *Handler) nextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if h.handleError(w, r, decodeJSON(r, &req), "quiz") {
		return
	}
	scope, err := req.scope()
	if h.handleError(w, r, err, "quiz") {
		return
	}

	next, err := h.trivia.NextQuizQuestion(r.Context(), scope, flexInts(req.PreviousQuestions))
	if h.handleError(w, r, err, "quiz") {
		return
	}

	respondJSON(w, http.StatusOK, QuizResponse{
		Success:  true,
		Question: next,
	})
}
