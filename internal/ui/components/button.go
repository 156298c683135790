package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vrfit/internal/ui/theme"
)

// Button is a styled call-to-action bound to a key.
type Button struct {
	Label   string
	Active  bool
	Key     key.Binding
	OnPress func() tea.Cmd
}

// NewButton creates a button triggered by Enter.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		Key:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", label)),
		OnPress: onPress,
	}
}

// Update fires OnPress when the bound key is pressed on an active button.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.OnPress == nil {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, b.Key) {
		return b, b.OnPress()
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	label := "▸ " + b.Label
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
