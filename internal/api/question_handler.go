package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trivia-api/backend/internal/domain/pagination"
	"github.com/trivia-api/backend/internal/domain/question"
	"github.com/trivia-api/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type QuestionsResponse struct {
	Success         bool                 `json:"success" example:"true"`
	Questions       []*question.Question `json:"questions"`
	TotalQuestions  int                  `json:"total_questions" example:"19"`
	Categories      map[string]string    `json:"categories"`
	CurrentCategory *string              `json:"current_category"`
}

type AddQuestionRequest struct {
	Question   string  `json:"question" validate:"required" example:"Who discovered penicillin?"`
	Answer     string  `json:"answer" validate:"required" example:"Alexander Fleming"`
	Difficulty FlexInt `json:"difficulty" validate:"required" swaggertype:"integer" example:"3"`
	Category   FlexInt `json:"category" validate:"required" swaggertype:"integer" example:"1"`
}

type AddQuestionResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Question added successfully"`
	Created int    `json:"created" example:"24"`
}

type DeleteQuestionResponse struct {
	Success bool `json:"success" example:"true"`
	Deleted int  `json:"deleted" example:"24"`
}

type SearchRequest struct {
	SearchTerm string `json:"searchTerm" example:"title"`
}

type SearchResponse struct {
	Success         bool                 `json:"success" example:"true"`
	Questions       []*question.Question `json:"questions"`
	TotalQuestions  int                  `json:"total_questions" example:"2"`
	CurrentCategory *string              `json:"current_category"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listQuestions returns one page of questions ordered by id.
// @Summary      List questions
// @Description  Ten questions per page. Pages past the end are empty, not errors.
// @Tags         Questions
// @Produce      json
// @Param        page  query     int  false  "1-based page number"  default(1)
// @Success      200   {object}  QuestionsResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	page := pagination.ParsePage(r.URL.Query().Get("page"))

	res, err := h.trivia.QuestionsPage(r.Context(), page)
	if h.handleError(w, r, err, "questions") {
		return
	}

	respondJSON(w, http.StatusOK, QuestionsResponse{
		Success:         true,
		Questions:       res.Questions,
		TotalQuestions:  res.Total,
		Categories:      res.Categories.Types(),
		CurrentCategory: nil,
	})
}

// searchQuestions finds questions containing a term, ignoring case.
// @Summary      Search questions
// @Description  Case-insensitive substring match on question text. Results are not paginated.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        body  body      SearchRequest  true  "Search term"
// @Success      200   {object}  SearchResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /questions [post]
func (h *Handler) searchQuestions(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if h.handleError(w, r, decodeJSON(r, &req), "questions") {
		return
	}

	found, err := h.trivia.SearchQuestions(r.Context(), req.SearchTerm)
	if h.handleError(w, r, err, "questions") {
		return
	}

	respondJSON(w, http.StatusOK, SearchResponse{
		Success:         true,
		Questions:       found,
		TotalQuestions:  len(found),
		CurrentCategory: nil,
	})
}

// addQuestion creates a question.
// @Summary      Add a question
// @Description  All four fields are required; zero difficulty or category counts as missing. The category is not checked for existence.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        body  body      AddQuestionRequest  true  "Question to create"
// @Success      201   {object}  AddQuestionResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /questions/add [post]
func (h *Handler) addQuestion(w http.ResponseWriter, r *http.Request) {
	var req AddQuestionRequest
	if h.handleError(w, r, decodeJSON(r, &req), "question") {
		return
	}
	if h.handleError(w, r, h.validateRequest(&req), "question") {
		return
	}

	q, err := h.trivia.AddQuestion(r.Context(), service.NewQuestion{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: int(req.Difficulty),
		Category:   int(req.Category),
	})
	if h.handleError(w, r, err, "question") {
		return
	}

	respondJSON(w, http.StatusCreated, AddQuestionResponse{
		Success: true,
		Message: "Question added successfully",
		Created: q.ID,
	})
}

// deleteQuestion removes a question.
// @Summary      Delete a question
// @Tags         Questions
// @Produce      json
// @Param        questionID  path      int  true  "Question ID"
// @Success      200         {object}  DeleteQuestionResponse
// @Failure      404         {object}  ErrorResponse
// @Failure      500         {object}  ErrorResponse
// @Router       /questions/{questionID} [delete]
func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, err := pathID(chi.URLParam(r, "questionID"))
	if h.handleError(w, r, err, "question") {
		return
	}

	deleted, err := h.trivia.DeleteQuestion(r.Context(), questionID)
	if h.handleError(w, r, err, "question") {
		return
	}

	respondJSON(w, http.StatusOK, DeleteQuestionResponse{
		Success: true,
		Deleted: deleted,
	})
}
