package session

import (
	"time"

	"github.com/abhisek/orienta/internal/quiz"
)

// Summary is the data the results view renders.
type Summary struct {
	AttemptID      string
	Duration       time.Duration
	TotalQuestions int
	Results        []quiz.Result
}

// BuildSummary summarizes a completed attempt.
func (s *Session) BuildSummary() (*Summary, error) {
	results, err := s.engine.Results()
	if err != nil {
		return nil, err
	}
	return &Summary{
		AttemptID:      s.attemptID,
		Duration:       s.now().Sub(s.startedAt),
		TotalQuestions: s.engine.TotalQuestions(),
		Results:        results,
	}, nil
}

// Fraction is the display share of result i against the question count.
func (sum *Summary) Fraction(i int) float64 {
	return quiz.ScoreFraction(sum.Results[i].Score, sum.TotalQuestions)
}
