package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trivia-api/backend/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

type CategoriesResponse struct {
	Success    bool              `json:"success" example:"true"`
	Categories map[string]string `json:"categories"`
}

type CategoryQuestionsResponse struct {
	Success         bool                 `json:"success" example:"true"`
	Questions       []*question.Question `json:"questions"`
	TotalQuestions  int                  `json:"totalQuestions" example:"3"`
	CurrentCategory string               `json:"currentCategory" example:"Science"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listCategories returns every category keyed by id.
// @Summary      List categories
// @Description  Returns a map of category id to display name.
// @Tags         Categories
// @Produce      json
// @Success      200  {object}  CategoriesResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /categories [get]
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	dir, err := h.trivia.Categories(r.Context())
	if h.handleError(w, r, err, "categories") {
		return
	}

	respondJSON(w, http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: dir.Types(),
	})
}

// listQuestionsByCategory returns all questions filed under one category.
// @Summary      List questions by category
// @Description  Returns every question in the category, unpaginated. Unknown categories are 404.
// @Tags         Categories
// @Produce      json
// @Param        categoryID  path      int  true  "Category ID"
// @Success      200         {object}  CategoryQuestionsResponse
// @Failure      404         {object}  ErrorResponse
// @Failure      500         {object}  ErrorResponse
// @Router       /categories/{categoryID}/questions [get]
func (h *Handler) listQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(chi.URLParam(r, "categoryID"))
	if h.handleError(w, r, err, "category") {
		return
	}

	res, err := h.trivia.QuestionsByCategory(r.Context(), categoryID)
	if h.handleError(w, r, err, "category") {
		return
	}

	respondJSON(w, http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       res.Questions,
		TotalQuestions:  len(res.Questions),
		CurrentCategory: res.Category.Type,
	})
}
