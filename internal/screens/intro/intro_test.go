package intro

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/orienta/internal/router"
	"github.com/abhisek/orienta/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Inicio" }

func newTestIntro() (*IntroScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func sendTicks(s *IntroScreen, n int) {
	for i := 0; i < n; i++ {
		s.Update(tickMsg(time.Now()))
	}
}

func TestRevealOverTime(t *testing.T) {
	s, _ := newTestIntro()

	if strings.Contains(s.View(100, 30), "futuro") {
		t.Error("headline should not be visible at start")
	}

	sendTicks(s, 3)
	if !strings.Contains(s.View(100, 30), "futuro") {
		t.Error("headline should be visible after 300ms")
	}
	if strings.Contains(s.View(100, 30), "Presiona Enter") {
		t.Error("prompt should not be visible yet")
	}

	sendTicks(s, 9)
	if !strings.Contains(s.View(100, 30), "Presiona Enter") {
		t.Error("prompt should be visible after 1200ms")
	}
}

func TestTicksStopWhenRevealed(t *testing.T) {
	s, _ := newTestIntro()
	sendTicks(s, 12)

	_, cmd := s.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Error("expected ticking to stop once fully revealed")
	}
	if s.elapsed != promptAt {
		t.Errorf("expected elapsed capped at %v, got %v", promptAt, s.elapsed)
	}
}

func TestFirstKeySkipsAnimation(t *testing.T) {
	s, calls := newTestIntro()
	sendTicks(s, 2)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("first key press should only reveal the screen")
	}
	if s.elapsed != promptAt {
		t.Errorf("expected elapsed %v, got %v", promptAt, s.elapsed)
	}
	if *calls != 0 {
		t.Errorf("factory should not be called yet, got %d", *calls)
	}
}

func TestKeyAfterRevealEmitsReplace(t *testing.T) {
	s, calls := newTestIntro()
	sendTicks(s, 12)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command after reveal")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replacement screen should not be nil")
	}
	if *calls != 1 {
		t.Errorf("factory should be called once, got %d", *calls)
	}

	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'x'}); cmd != nil {
		t.Error("second transition should be a no-op")
	}
	if *calls != 1 {
		t.Errorf("factory should be called exactly once, got %d", *calls)
	}
}

func TestCompactBanner(t *testing.T) {
	if got := RenderBanner(40); !strings.Contains(got, "O R I E N T A") {
		t.Errorf("expected compact banner, got %q", got)
	}
	if got := RenderBanner(100); strings.Contains(got, "O R I E N T A") {
		t.Error("expected block banner on wide terminals")
	}
}
