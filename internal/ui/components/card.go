package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ailearn/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every card on a screen.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 90)
}

// Card wraps content in a rounded border at the given content width.
func Card(content string, cw int) string {
	return theme.Card.Width(cw).Render(content)
}

// Centered places content in the middle of the area.
func Centered(content string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Steps renders a step indicator such as "✓ A  ● B  ○ C".
func Steps(labels []string, current int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		switch {
		case i < current:
			parts[i] = theme.StepDone.Render("✓ " + l)
		case i == current:
			parts[i] = theme.StepActive.Render("● " + l)
		default:
			parts[i] = theme.StepPending.Render("○ " + l)
		}
	}
	return strings.Join(parts, "  ")
}

// Message renders a transient notice, red for errors.
func Message(text string, isErr bool) string {
	if text == "" {
		return ""
	}
	if isErr {
		return theme.Incorrect.Render(text)
	}
	return theme.Correct.Render(text)
}
