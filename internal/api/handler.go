// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/trivia-api/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	trivia   *service.TriviaService
	logger   logrus.FieldLogger
	validate *validator.Validate
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(trivia *service.TriviaService, logger logrus.FieldLogger) *Handler {
	return &Handler{
		trivia:   trivia,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// log returns the request-scoped logger.
func (h *Handler) log(r *http.Request) logrus.FieldLogger {
	return h.logger.WithField("request_id", RequestIDFromContext(r.Context()))
}

// handleError maps service error kinds to responses. Returns true if an
// error was handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error, entity string) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, service.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, service.ErrUnprocessable):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.log(r).WithError(err).WithField("entity", entity).Error("request failed")
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
	return true
}

// decodeJSON decodes the request body into v. Syntax errors and empty
// bodies are validation errors; well-formed JSON with the wrong field
// types is unprocessable.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, service.ErrUnprocessable):
		return err
	case errors.As(err, &typeErr):
		return fmt.Errorf("%w: field %q must be %s", service.ErrUnprocessable, typeErr.Field, typeErr.Type)
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: request body is required", service.ErrValidation)
	default:
		return fmt.Errorf("%w: malformed JSON body", service.ErrValidation)
	}
}

// validateRequest runs struct-tag validation and reports every missing
// field by its JSON name.
func (h *Handler) validateRequest(v any) error {
	err := h.validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", service.ErrValidation, err)
	}
	missing := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		missing[i] = jsonFieldName(fe.StructField(), v)
	}
	return fmt.Errorf("%w: missing required fields: %s", service.ErrValidation, strings.Join(missing, ", "))
}

// pathID parses an integer path parameter. Anything else reads as an
// unknown resource.
func pathID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an id", service.ErrNotFound, raw)
	}
	return id, nil
}
