package splash

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vrfit/internal/router"
	"github.com/abhisek/vrfit/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "intro" }
func (s *stubScreen) Title() string                          { return "Intro" }

func newTestSplash() (*SplashScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func sendTicks(s *SplashScreen, n int) {
	for i := 0; i < n; i++ {
		s.Update(tickMsg(time.Now()))
	}
}

func TestCaptionAppearsAfterDelay(t *testing.T) {
	s, _ := newTestSplash()

	if strings.Contains(s.View(80, 24), "press any key") {
		t.Error("caption should not be visible at start")
	}

	sendTicks(s, 12)
	if s.elapsed != captionStart {
		t.Errorf("expected elapsed %v, got %v", captionStart, s.elapsed)
	}
	if !strings.Contains(s.View(80, 24), "press any key") {
		t.Error("caption should be visible after the delay")
	}
}

func TestElapsedCapped(t *testing.T) {
	s, calls := newTestSplash()
	sendTicks(s, 50)

	if s.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, s.elapsed)
	}
	if *calls != 0 {
		t.Errorf("no transition without a key press, got %d", *calls)
	}
}

func TestKeyPressReplacesOnce(t *testing.T) {
	s, calls := newTestSplash()
	sendTicks(s, 3)

	_, cmd := s.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected a command from key press")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if msg.Screen == nil {
		t.Error("replacement screen should not be nil")
	}

	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'a'}); cmd != nil {
		t.Error("second key press should not produce a command")
	}
	if *calls != 1 {
		t.Errorf("factory should be called once, got %d", *calls)
	}
}

func TestTicksStopAfterTransition(t *testing.T) {
	s, _ := newTestSplash()
	s.Update(tea.KeyPressMsg{Code: 'x'})

	if _, cmd := s.Update(tickMsg(time.Now())); cmd != nil {
		t.Error("ticks should stop once the splash has handed over")
	}
}
