package components

import (
	"fmt"
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ailearn/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a character counter.
type TextInput struct {
	Model textinput.Model

	// MinLength is shown next to the counter; zero hides it.
	MinLength int
}

// NewTextInput creates a new focused text input.
func NewTextInput(placeholder string, charLimit, minLength int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()
	return TextInput{Model: ti, MinLength: minLength}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input and, when a minimum is set, the counter.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.MinLength > 0 {
		n := utf8.RuneCountInString(t.Model.Value())
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if n >= t.MinLength {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		view += "\n" + style.Render(fmt.Sprintf("%d caracteres (mínimo %d)", n, t.MinLength))
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Clear empties the input.
func (t *TextInput) Clear() {
	t.Model.SetValue("")
}
