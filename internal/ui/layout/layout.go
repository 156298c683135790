package layout

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vrfit/internal/ui/theme"
)

// Smallest terminal the questionnaire fits in without clipping options.
const (
	MinWidth  = 80
	MinHeight = 24
)

// chrome is the horizontal space taken by a bar's border and padding.
const chrome = 4

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// QuitHint is appended to every footer and is never dropped.
var QuitHint = KeyHint{Key: "Ctrl+C", Description: "Quit"}

var (
	barStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(theme.Border)
	brandStyle  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(theme.Text)
	statusStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	keyStyle    = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle   = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// Frame is the chrome drawn around the active screen.
type Frame struct {
	// Title is centred in the header.
	Title string
	// Status is right-aligned in the header, e.g. "Question 3 of 21".
	Status string
	// Hints are listed in priority order. When the footer is too narrow the
	// trailing ones are dropped first.
	Hints []KeyHint
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small\n\nvrfit needs at least %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// Render draws header, body and footer filling width x height. body is called
// with the space left between the bars. Below the minimum size only the
// resize message is shown and body is not called.
func (f Frame) Render(width, height int, body func(width, height int) string) string {
	if IsTooSmall(width, height) {
		return RenderMinSizeMessage(width, height)
	}

	header := f.Header(width)
	footer := f.Footer(width)
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body(width, bodyHeight))

	return header + "\n" + content + "\n" + footer
}

// Header renders the brand on the left, the title centred in the remaining
// space and the status on the right. The title is omitted when it does not
// fit beside the status.
func (f Frame) Header(width int) string {
	brand := brandStyle.Render("  vrfit")
	status := ""
	if f.Status != "" {
		status = statusStyle.Render(f.Status)
	}

	inner := max(width-chrome, 0)
	free := inner - lipgloss.Width(brand) - lipgloss.Width(status)

	middle := strings.Repeat(" ", max(free, 1))
	if title := titleStyle.Render(f.Title); f.Title != "" && lipgloss.Width(title)+2 <= free {
		middle = lipgloss.PlaceHorizontal(free, lipgloss.Center, title)
	}

	return barStyle.Width(width).Render(brand + middle + status)
}

// Footer renders the hints followed by QuitHint, dropping trailing hints
// until the line fits.
func (f Frame) Footer(width int) string {
	hints := append(slices.Clone(f.Hints), QuitHint)
	inner := max(width-chrome, 0)

	line := joinHints(hints)
	for len(hints) > 1 && lipgloss.Width(line) > inner {
		hints = slices.Delete(hints, len(hints)-2, len(hints)-1)
		line = joinHints(hints)
	}

	return barStyle.Width(width).Render(line)
}

func joinHints(hints []KeyHint) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return "  " + strings.Join(parts, "   ")
}
