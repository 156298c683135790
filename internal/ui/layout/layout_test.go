package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{120, 40, false},
		{79, 24, true},
		{80, 23, true},
		{0, 0, true},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestHeader(t *testing.T) {
	out := Frame{Title: "Assessment", Status: "Question 3 of 21"}.Header(100)
	for _, want := range []string{"vrfit", "Assessment", "Question 3 of 21"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
}

func TestHeader_DropsTitleBeforeStatus(t *testing.T) {
	f := Frame{Title: strings.Repeat("T", 70), Status: "Question 21 of 21"}
	out := f.Header(80)
	if strings.Contains(out, "TTTT") {
		t.Errorf("oversized title should be omitted:\n%s", out)
	}
	if !strings.Contains(out, "Question 21 of 21") {
		t.Errorf("status missing:\n%s", out)
	}
}

func TestFooter_AlwaysEndsWithQuit(t *testing.T) {
	out := Frame{Hints: []KeyHint{{Key: "Enter", Description: "Next"}}}.Footer(100)
	if !strings.Contains(out, "Enter") || !strings.Contains(out, "Ctrl+C") {
		t.Errorf("footer missing hints:\n%s", out)
	}
	if strings.Index(out, "Enter") > strings.Index(out, "Ctrl+C") {
		t.Errorf("quit hint should come last:\n%s", out)
	}
}

func TestFooter_DropsTrailingHintsWhenNarrow(t *testing.T) {
	f := Frame{Hints: []KeyHint{
		{Key: "↑↓/1-5", Description: "Choose"},
		{Key: "Enter/→", Description: "Next"},
		{Key: "←", Description: "Previous"},
		{Key: "Esc", Description: "Back to the introduction screen"},
		{Key: "?", Description: "A very long optional description"},
	}}
	out := f.Footer(MinWidth)

	if !strings.Contains(out, "Choose") || !strings.Contains(out, "Ctrl+C") {
		t.Errorf("footer lost its leading or quit hint:\n%s", out)
	}
	if strings.Contains(out, "A very long optional description") {
		t.Errorf("trailing hint should have been dropped:\n%s", out)
	}
	if got := lipgloss.Height(out); got != 3 {
		t.Errorf("footer height = %d, want 3 (single line)", got)
	}
}

func TestRender_FillsHeight(t *testing.T) {
	var gotW, gotH int
	frame := Frame{Title: "T"}.Render(80, 24, func(w, h int) string {
		gotW, gotH = w, h
		return "body"
	})

	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
	if !strings.Contains(frame, "body") {
		t.Error("frame missing content")
	}
	if gotW != 80 || gotH != 24-6 {
		t.Errorf("body size = %dx%d, want 80x18", gotW, gotH)
	}
}

func TestRender_ClipsTallBody(t *testing.T) {
	frame := Frame{}.Render(80, 24, func(w, h int) string {
		return strings.Repeat("line\n", 100)
	})
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
}

func TestRender_TooSmallSkipsBody(t *testing.T) {
	called := false
	out := Frame{}.Render(40, 10, func(w, h int) string {
		called = true
		return ""
	})
	if called {
		t.Error("body rendered below minimum size")
	}
	if !strings.Contains(out, "80 x 24") || !strings.Contains(out, "40 x 10") {
		t.Errorf("unexpected message:\n%s", out)
	}
}
