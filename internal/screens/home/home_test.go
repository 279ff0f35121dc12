package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/orienta/internal/content"
	"github.com/abhisek/orienta/internal/router"
	"github.com/abhisek/orienta/internal/screens/areas"
	"github.com/abhisek/orienta/internal/screens/notice"
	quizscreen "github.com/abhisek/orienta/internal/screens/quiz"
	"github.com/abhisek/orienta/internal/store"
)

type fakeRepo struct {
	store.EventRepo
	attempts []store.AttemptRecord
	events   []store.QuizEventData
}

func (f *fakeRepo) RecentAttempts(_ context.Context, opts store.QueryOpts) ([]store.AttemptRecord, error) {
	if opts.Limit > 0 && len(f.attempts) > opts.Limit {
		return f.attempts[:opts.Limit], nil
	}
	return f.attempts, nil
}

func (f *fakeRepo) AppendQuizEvent(_ context.Context, data store.QuizEventData) error {
	f.events = append(f.events, data)
	return nil
}

func (f *fakeRepo) AppendResults(context.Context, string, int, []store.ResultData) error {
	return nil
}

func newTestHome(t *testing.T, repo store.EventRepo) *HomeScreen {
	t.Helper()
	c, err := content.Default()
	if err != nil {
		t.Fatalf("load default content: %v", err)
	}
	return New(c, repo)
}

func pushed(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	return msg.Screen
}

func TestHome_StartQuizRecordsStart(t *testing.T) {
	repo := &fakeRepo{}
	h := newTestHome(t, repo)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := pushed(t, cmd).(*quizscreen.QuizScreen); !ok {
		t.Fatal("expected quiz screen")
	}
	if len(repo.events) != 1 || repo.events[0].Action != store.ActionStart {
		t.Errorf("expected one start event, got %+v", repo.events)
	}
}

func TestHome_StartQuizWithoutRepo(t *testing.T) {
	h := newTestHome(t, nil)
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := pushed(t, cmd).(*quizscreen.QuizScreen); !ok {
		t.Fatal("expected quiz screen")
	}
}

func TestHome_AreasItem(t *testing.T) {
	h := newTestHome(t, nil)
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := pushed(t, cmd).(*areas.AreasScreen); !ok {
		t.Fatal("expected areas screen")
	}
}

func TestHome_HistoryWithoutRepo(t *testing.T) {
	h := newTestHome(t, nil)
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := pushed(t, cmd).(*notice.NoticeScreen); !ok {
		t.Fatal("expected notice screen when history is unavailable")
	}
}

func TestHome_LastAttempt(t *testing.T) {
	repo := &fakeRepo{attempts: []store.AttemptRecord{{
		AttemptID:      "a",
		TotalQuestions: 5,
		Results:        []store.ResultData{{Rank: 1, Tag: "artes", AreaName: "Artes y Humanidades", Score: 5}},
	}}}
	h := newTestHome(t, repo)

	cmd := h.Init()
	if cmd == nil {
		t.Fatal("expected load command")
	}
	h.Update(cmd())
	if h.last == nil || h.last.AttemptID != "a" {
		t.Fatalf("expected last attempt loaded, got %+v", h.last)
	}
	if !strings.Contains(h.View(120, 40), "Artes y Humanidades") {
		t.Error("expected last top area in view")
	}
	if h.Focus() == nil {
		t.Error("expected Focus to reload")
	}
}

func TestHome_NoRepoNoLoad(t *testing.T) {
	h := newTestHome(t, nil)
	if h.Init() != nil {
		t.Error("expected no load command without repo")
	}
	if !strings.Contains(h.View(120, 40), "SIN INTENTOS") {
		t.Error("expected empty stats")
	}
}
