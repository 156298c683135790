package components

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vrfit/internal/ui/theme"
)

// OptionKeys are the bindings an OptionList responds to. Digits 1..9 pick an
// option directly and are handled separately.
type OptionKeys struct {
	Up   key.Binding
	Down key.Binding
}

// DefaultOptionKeys returns arrow and vim-style bindings.
func DefaultOptionKeys() OptionKeys {
	return OptionKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "choose"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
	}
}

// OptionList is a single-choice selector. Moving the cursor chooses the
// option under it; Selected is -1 until something is chosen.
type OptionList struct {
	Options  []string
	Selected int
	Keys     OptionKeys
}

// NewOptionList creates an option list with an optional prior choice.
func NewOptionList(options []string, selected int) OptionList {
	if selected < 0 || selected >= len(options) {
		selected = -1
	}
	return OptionList{
		Options:  options,
		Selected: selected,
		Keys:     DefaultOptionKeys(),
	}
}

// Init returns nil.
func (m OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard selection.
func (m OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Options) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.Keys.Up):
		if m.Selected < 0 {
			m.Selected = len(m.Options) - 1
		} else if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(kmsg, m.Keys.Down):
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	default:
		if n, err := strconv.Atoi(kmsg.String()); err == nil && n >= 1 && n <= len(m.Options) {
			m.Selected = n - 1
		}
	}

	return m, nil
}

// View renders the options, one per line.
func (m OptionList) View() string {
	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if i == m.Selected {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
