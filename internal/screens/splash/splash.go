package splash

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vrfit/internal/catalog"
	"github.com/abhisek/vrfit/internal/router"
	"github.com/abhisek/vrfit/internal/screen"
	"github.com/abhisek/vrfit/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	glowStart    = 400 * time.Millisecond
	captionStart = 1200 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

const headsetArt = `   ╭─────────────────────╮
  ╭┤ ╭───────╮ ╭───────╮ ├╮
  ││ │       │ │       │ ││
  ╰┤ ╰───────╯ ╰───────╯ ├╯
   ╰─────────╮ ╭─────────╯
             ╰─╯`

// glowFrames cycle on either side of the headset.
var glowFrames = []string{"◇", "◆"}

type tickMsg time.Time

// SplashScreen plays a short headset animation, then hands over to the
// screen built by next on the first key press.
type SplashScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	frame        int
	transitioned bool
}

var _ screen.Screen = (*SplashScreen)(nil)

// New creates a splash that replaces itself with next().
func New(next func() screen.Screen) *SplashScreen {
	return &SplashScreen{next: next}
}

func (s *SplashScreen) Title() string {
	return ""
}

func (s *SplashScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *SplashScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if s.transitioned {
			return s, nil
		}
		if s.elapsed < totalDur {
			s.elapsed += tickInterval
		}
		s.frame++
		return s, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return s, s.transition()
	}

	return s, nil
}

func (s *SplashScreen) transition() tea.Cmd {
	if s.transitioned {
		return nil
	}
	s.transitioned = true
	next := s.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *SplashScreen) View(width, height int) string {
	art := lipgloss.NewStyle().Foreground(theme.Secondary).Render(headsetArt)

	if s.elapsed >= glowStart {
		glow := glowFrames[s.frame%len(glowFrames)]
		left := lipgloss.NewStyle().Foreground(theme.Accent).Render(glow)
		right := lipgloss.NewStyle().Foreground(theme.Primary).Render(glow)

		lines := strings.Split(art, "\n")
		for i := range lines {
			if i == 2 {
				lines[i] = left + "  " + lines[i] + "  " + right
			} else {
				lines[i] = "   " + lines[i] + "   "
			}
		}
		art = strings.Join(lines, "\n")
	}

	sections := []string{art}

	if s.elapsed >= captionStart {
		sections = append(sections,
			"",
			theme.Heading.Render(catalog.Track+" Assessment"),
			"",
			theme.Hint.Render("press any key to begin"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
