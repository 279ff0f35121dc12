package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/orienta/internal/quiz"
	"github.com/abhisek/orienta/internal/store"
)

// Recorder persists attempt transitions. store.EventRepo satisfies it.
type Recorder interface {
	AppendQuizEvent(ctx context.Context, data store.QuizEventData) error
	AppendResults(ctx context.Context, attemptID string, totalQuestions int, results []store.ResultData) error
}

// Session owns the engine of one quiz run and records each accepted
// transition. Engine state is authoritative: a failing recorder is logged
// and never undoes a transition.
type Session struct {
	engine    *quiz.Engine
	recorder  Recorder
	attemptID string
	startedAt time.Time
	now       func() time.Time
}

// New starts an attempt on engine. A nil recorder disables persistence.
func New(ctx context.Context, engine *quiz.Engine, recorder Recorder) *Session {
	s := &Session{
		engine:   engine,
		recorder: recorder,
		now:      time.Now,
	}
	s.start(ctx)
	return s
}

// Engine returns the engine driven by this session. Callers use it for
// reads; transitions go through the session so they are recorded.
func (s *Session) Engine() *quiz.Engine {
	return s.engine
}

// AttemptID returns the UUID of the current attempt.
func (s *Session) AttemptID() string {
	return s.attemptID
}

// StartedAt returns when the current attempt began.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Answer selects optionIndex for the current question. When this answer
// completes the quiz, the ranked results are recorded as well.
func (s *Session) Answer(ctx context.Context, optionIndex int) error {
	question := s.engine.Position()
	if err := s.engine.Answer(optionIndex); err != nil {
		return err
	}

	s.record(ctx, store.ActionAnswer, question, optionIndex)
	if s.engine.IsComplete() {
		s.complete(ctx)
	}
	return nil
}

// GoBack returns to the previous question.
func (s *Session) GoBack(ctx context.Context) error {
	if err := s.engine.GoBack(); err != nil {
		return err
	}
	s.record(ctx, store.ActionBack, s.engine.Position(), -1)
	return nil
}

// Reset closes the current attempt and starts a new one from the first
// question.
func (s *Session) Reset(ctx context.Context) {
	s.record(ctx, store.ActionReset, s.engine.Position(), -1)
	s.engine.Reset()
	s.start(ctx)
}

// Results returns the ranked areas of a completed attempt.
func (s *Session) Results() ([]quiz.Result, error) {
	return s.engine.Results()
}

func (s *Session) start(ctx context.Context) {
	s.attemptID = uuid.New().String()
	s.startedAt = s.now()
	s.record(ctx, store.ActionStart, s.engine.Position(), -1)
}

func (s *Session) complete(ctx context.Context) {
	s.record(ctx, store.ActionComplete, s.engine.Position(), -1)

	results, err := s.engine.Results()
	if err != nil {
		// Unreachable with a validated catalog.
		slog.Error("rank results", "attempt", s.attemptID, "error", err)
		return
	}
	if s.recorder == nil {
		return
	}
	if err := s.recorder.AppendResults(ctx, s.attemptID, s.engine.TotalQuestions(), ToResultData(results)); err != nil {
		slog.Warn("failed to record quiz results", "attempt", s.attemptID, "error", err)
	}
}

func (s *Session) record(ctx context.Context, action string, question, option int) {
	if s.recorder == nil {
		return
	}
	err := s.recorder.AppendQuizEvent(ctx, store.QuizEventData{
		AttemptID:     s.attemptID,
		Action:        action,
		QuestionIndex: question,
		OptionIndex:   option,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Warn("failed to record quiz event", "attempt", s.attemptID, "action", action, "error", err)
	}
}

// ToResultData converts ranked engine results to store rows, rank 1 first.
func ToResultData(results []quiz.Result) []store.ResultData {
	out := make([]store.ResultData, len(results))
	for i, r := range results {
		out[i] = store.ResultData{
			Rank:     i + 1,
			Tag:      r.Area.Tag,
			AreaName: r.Area.Name,
			Icon:     r.Area.Icon,
			Score:    r.Score,
		}
	}
	return out
}
