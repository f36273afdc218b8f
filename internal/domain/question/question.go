package question

import "errors"

var (
	ErrMissingQuestion   = errors.New("question text is required")
	ErrMissingAnswer     = errors.New("answer is required")
	ErrMissingDifficulty = errors.New("difficulty is required")
	ErrMissingCategory   = errors.New("category is required")
)

// Question is a single trivia prompt. ID is zero until the store assigns one.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int    `json:"category"`
}

// New validates the four required fields and returns an unsaved Question.
// Zero difficulty or category counts as missing. The category is not
// checked against the catalog.
func New(text, answer string, difficulty, categoryID int) (*Question, error) {
	q := &Question{
		Question:   text,
		Answer:     answer,
		Difficulty: difficulty,
		Category:   categoryID,
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

func (q *Question) Validate() error {
	switch {
	case q.Question == "":
		return ErrMissingQuestion
	case q.Answer == "":
		return ErrMissingAnswer
	case q.Difficulty == 0:
		return ErrMissingDifficulty
	case q.Category == 0:
		return ErrMissingCategory
	}
	return nil
}

// IDs returns the identifiers of qs in order.
func IDs(qs []*Question) []int {
	ids := make([]int, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}
