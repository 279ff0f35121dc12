package store

import (
	"context"
	"time"
)

// Quiz event actions.
const (
	ActionStart    = "start"
	ActionAnswer   = "answer"
	ActionBack     = "back"
	ActionReset    = "reset"
	ActionComplete = "complete"
)

// QueryOpts configures history queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// QuizEventData captures one accepted transition of a quiz attempt.
// QuestionIndex is the engine position after the transition; OptionIndex is
// the selected option for answers and -1 otherwise.
type QuizEventData struct {
	AttemptID     string
	Action        string
	QuestionIndex int
	OptionIndex   int
}

// QuizEventRecord is a persisted quiz event.
type QuizEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	QuizEventData
}

// ResultData is one ranked area of a completed attempt.
type ResultData struct {
	Rank     int
	Tag      string
	AreaName string
	Icon     string
	Score    int
}

// AttemptRecord is a completed attempt with its ranked results.
type AttemptRecord struct {
	AttemptID      string
	CompletedAt    time.Time
	TotalQuestions int
	Results        []ResultData
}

// EventRepo provides append and query access to quiz history.
type EventRepo interface {
	// AppendQuizEvent records an attempt transition.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// AppendResults records the ranked results of a completed attempt.
	AppendResults(ctx context.Context, attemptID string, totalQuestions int, results []ResultData) error

	// RecentAttempts returns completed attempts, newest first.
	RecentAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// AttemptEvents returns the events of one attempt in sequence order.
	AttemptEvents(ctx context.Context, attemptID string) ([]QuizEventRecord, error)

	// Clear deletes all recorded history.
	Clear(ctx context.Context) error
}
