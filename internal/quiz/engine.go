package quiz

import (
	"cmp"
	"fmt"
	"slices"
)

// Engine walks a catalog's questions in order, records the selected option
// for each one and ranks affinity areas once the last question is answered.
//
// An Engine is owned by a single quiz attempt and is not safe for concurrent
// use. Operations that fail leave the state untouched.
type Engine struct {
	catalog   *Catalog
	position  int
	trail     []int
	completed bool
}

// NewEngine creates an engine at the first question. The catalog must come
// from NewCatalog.
func NewEngine(catalog *Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Catalog returns the catalog the engine runs on.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// TotalQuestions returns the number of questions in the quiz.
func (e *Engine) TotalQuestions() int {
	return e.catalog.Len()
}

// Position returns the index of the current question. Once complete it
// still indexes the last answered question.
func (e *Engine) Position() int {
	return e.position
}

// Trail returns a copy of the selected option indices so far.
func (e *Engine) Trail() []int {
	return slices.Clone(e.trail)
}

// IsComplete reports whether the last question has been answered.
func (e *Engine) IsComplete() bool {
	return e.completed
}

// Answer records optionIndex for the current question and moves forward.
// Answering the last question completes the quiz without moving position.
func (e *Engine) Answer(optionIndex int) error {
	if e.completed {
		return fmt.Errorf("answer: %w", ErrQuizComplete)
	}
	q := e.catalog.questions[e.position]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return fmt.Errorf("answer %d for question %d (%d options): %w",
			optionIndex, e.position, len(q.Options), ErrInvalidSelection)
	}

	e.trail = append(e.trail, optionIndex)
	if e.position == e.catalog.Len()-1 {
		e.completed = true
	} else {
		e.position++
	}
	return nil
}

// GoBack returns to the previous question and discards its recorded answer.
func (e *Engine) GoBack() error {
	if e.completed {
		return fmt.Errorf("go back: %w", ErrQuizComplete)
	}
	if e.position == 0 {
		return ErrNoPreviousQuestion
	}
	e.position--
	e.trail = e.trail[:len(e.trail)-1]
	return nil
}

// Reset returns the engine to the first question with an empty trail.
func (e *Engine) Reset() {
	e.position = 0
	e.trail = nil
	e.completed = false
}

// CurrentQuestion returns the question awaiting an answer.
func (e *Engine) CurrentQuestion() (Question, error) {
	if e.completed {
		return Question{}, ErrNoCurrentQuestion
	}
	return e.catalog.questions[e.position].clone(), nil
}

// ProgressFraction is the share of questions answered before the current
// one, or 1 once complete.
func (e *Engine) ProgressFraction() float64 {
	if e.completed {
		return 1.0
	}
	return float64(e.position) / float64(e.catalog.Len())
}

// Results ranks the areas touched by the trail. Scores are raw counts,
// sorted descending; equal scores keep the order in which their tags first
// appeared in the trail. At most MaxResults entries are returned.
func (e *Engine) Results() ([]Result, error) {
	if !e.completed {
		return nil, ErrNotComplete
	}

	counts := make(map[string]int)
	var order []string
	for i, opt := range e.trail {
		for _, tag := range e.catalog.questions[i].Options[opt].Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	slices.SortStableFunc(order, func(a, b string) int {
		return cmp.Compare(counts[b], counts[a])
	})
	if len(order) > MaxResults {
		order = order[:MaxResults]
	}

	results := make([]Result, 0, len(order))
	for _, tag := range order {
		area, ok := e.catalog.areas[tag]
		if !ok {
			return nil, fmt.Errorf("resolve %q: %w", tag, ErrUnknownTag)
		}
		results = append(results, Result{Area: area, Score: counts[tag]})
	}
	return results, nil
}

// ScoreFraction normalizes a raw score against the number of questions for
// display, clamped to [0, 1].
func ScoreFraction(score, totalQuestions int) float64 {
	if totalQuestions <= 0 {
		return 0
	}
	f := float64(score) / float64(totalQuestions)
	return min(max(f, 0), 1)
}
