package quiz

import (
	"context"
	"errors"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	core "github.com/abhisek/orienta/internal/quiz"
	"github.com/abhisek/orienta/internal/router"
	"github.com/abhisek/orienta/internal/screen"
	"github.com/abhisek/orienta/internal/screens/results"
	"github.com/abhisek/orienta/internal/session"
	"github.com/abhisek/orienta/internal/ui/components"
	"github.com/abhisek/orienta/internal/ui/layout"
)

// QuizScreen walks the user through the questions of one session.
type QuizScreen struct {
	sess     *session.Session
	question core.Question
	options  components.OptionList
	errMsg   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen positioned at the session's current question.
func New(sess *session.Session) *QuizScreen {
	s := &QuizScreen{sess: sess}
	s.loadQuestion()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Cuestionario"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Mover"},
		{Key: "1-9/Enter", Description: "Responder"},
	}
	if s.canGoBack() {
		hints = append(hints, layout.KeyHint{Key: "←/b", Description: "Anterior"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Salir"})
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.OptionChosenMsg:
		return s, s.answer(msg.Index)

	case tea.KeyMsg:
		if key.Matches(msg, components.DefaultKeys.Back) {
			s.goBack()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

func (s *QuizScreen) answer(index int) tea.Cmd {
	ctx := context.Background()
	if err := s.sess.Answer(ctx, index); err != nil {
		s.errMsg = describe(err)
		return nil
	}
	s.errMsg = ""

	if s.sess.Engine().IsComplete() {
		return s.showResults()
	}
	s.loadQuestion()
	return nil
}

func (s *QuizScreen) goBack() {
	if !s.canGoBack() {
		return
	}
	if err := s.sess.GoBack(context.Background()); err != nil {
		s.errMsg = describe(err)
		return
	}
	s.errMsg = ""
	s.loadQuestion()
}

func (s *QuizScreen) canGoBack() bool {
	e := s.sess.Engine()
	return !e.IsComplete() && e.Position() > 0
}

func (s *QuizScreen) showResults() tea.Cmd {
	sum, err := s.sess.BuildSummary()
	if err != nil {
		slog.Error("build results", "attempt", s.sess.AttemptID(), "error", err)
		s.errMsg = describe(err)
		return nil
	}

	sess := s.sess
	retry := func() tea.Cmd {
		sess.Reset(context.Background())
		next := New(sess)
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	next := results.New(sum, retry)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *QuizScreen) loadQuestion() {
	q, err := s.sess.Engine().CurrentQuestion()
	if err != nil {
		return
	}
	s.question = q
	labels := make([]string, len(q.Options))
	for i, opt := range q.Options {
		labels[i] = opt.Label
	}
	s.options = components.NewOptionList(labels)
}

func describe(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidSelection):
		return "Esa opción no existe."
	case errors.Is(err, core.ErrNoPreviousQuestion):
		return "Ya estás en la primera pregunta."
	case errors.Is(err, core.ErrQuizComplete):
		return "El cuestionario ya terminó."
	default:
		return err.Error()
	}
}
