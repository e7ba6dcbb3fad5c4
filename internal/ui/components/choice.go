package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ailearn/internal/ui/theme"
)

// Choice picks one option from a list with arrows or number keys.
type Choice struct {
	Prompt   string
	Options  []string
	Selected int
	Chosen   int // -1 until a choice is made
}

// NewChoice creates a choice with nothing chosen.
func NewChoice(prompt string, options []string) Choice {
	return Choice{Prompt: prompt, Options: options, Chosen: -1}
}

// Update handles navigation. Enter or a number key sets Chosen.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Chosen = c.Selected
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(c.Options) {
			c.Selected = n - 1
			c.Chosen = n - 1
		}
	}
	return c, nil
}

// Done reports whether an option was chosen.
func (c Choice) Done() bool { return c.Chosen >= 0 }

// Reset clears the chosen option so the choice can be asked again.
func (c *Choice) Reset() { c.Chosen = -1 }

// View renders the prompt and options.
func (c Choice) View() string {
	var b strings.Builder
	if c.Prompt != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt))
		b.WriteString("\n\n")
	}
	for i, opt := range c.Options {
		prefix := "  "
		style := theme.Unselected
		if i == c.Selected {
			prefix = "▸ "
			style = theme.Selected
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%d) %s", prefix, i+1, opt)))
		b.WriteString("\n")
	}
	return b.String()
}
