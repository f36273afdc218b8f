// internal/api/router.go
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RouterConfig struct {
	Handler        *Handler
	Logger         logrus.FieldLogger
	AllowedOrigins string
}

// NewRouter builds the full HTTP surface.
// Middleware order: RealIP → RequestID → Logging → Recover → CORS → routes.
func NewRouter(cfg RouterConfig) http.Handler {
	h := cfg.Handler
	origins := cfg.AllowedOrigins
	if origins == "" {
		origins = "*"
	}

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(RequestID)
	r.Use(Logging(cfg.Logger))
	r.Use(Recover(cfg.Logger))
	r.Use(CORS(origins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Categories
	r.Get("/categories", h.listCategories)
	r.Get("/categories/{categoryID}/questions", h.listQuestionsByCategory)

	// Questions
	r.Get("/questions", h.listQuestions)
	r.Post("/questions", h.searchQuestions)
	r.Post("/questions/add", h.addQuestion)
	r.Delete("/questions/{questionID}", h.deleteQuestion)

	// Quizzes
	r.Post("/quizzes", h.nextQuizQuestion)

	return r
}
