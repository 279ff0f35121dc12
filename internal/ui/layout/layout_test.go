package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("expected narrow terminal to be too small")
	}
	if !IsTooSmall(MinWidth, MinHeight-1) {
		t.Error("expected short terminal to be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("expected minimum size to fit")
	}
}

func TestRenderHeaderContainsTitle(t *testing.T) {
	h := RenderHeader("Áreas", "v1.0.0", 100)
	if !strings.Contains(h, "Orienta") {
		t.Error("expected app name in header")
	}
	if !strings.Contains(h, "Áreas") {
		t.Error("expected title in header")
	}
	if !strings.Contains(h, "v1.0.0") {
		t.Error("expected status in header")
	}
}

func TestRenderFrameHeight(t *testing.T) {
	header := RenderHeader("Inicio", "", 80)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Volver"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("expected frame height 30, got %d", got)
	}
}
