package quiz

import (
	"math/rand/v2"

	"github.com/trivia-api/backend/internal/domain/question"
)

// Scope restricts a quiz draw to one category, or to all of them.
type Scope int

// AllCategories is the scope sentinel for drawing from the whole catalog.
const AllCategories Scope = 0

func (s Scope) IsAll() bool { return s == AllCategories }

// CategoryID returns the category the scope restricts to. Only meaningful
// when !IsAll().
func (s Scope) CategoryID() int { return int(s) }

// Selector draws one unseen question uniformly at random. It keeps no
// history: every call receives the caller's full list of served ids.
type Selector struct {
	intn func(n int) int
}

// NewSelector returns a Selector backed by the global math/rand/v2 source,
// which is safe for concurrent use.
func NewSelector() *Selector {
	return &Selector{intn: rand.IntN}
}

// NewSeededSelector returns a deterministic Selector. It is not safe for
// concurrent use.
func NewSeededSelector(seed uint64) *Selector {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return &Selector{intn: r.IntN}
}

// Candidates returns pool minus any question whose id is in previous.
// Ids in previous that are not in pool are ignored.
func Candidates(pool []*question.Question, previous []int) []*question.Question {
	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	remaining := make([]*question.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}
	return remaining
}

// Next picks a question from pool that is not in previous. It returns nil
// once every question in pool has been served.
func (s *Selector) Next(pool []*question.Question, previous []int) *question.Question {
	remaining := Candidates(pool, previous)
	if len(remaining) == 0 {
		return nil
	}
	return remaining[s.intn(len(remaining))]
}
