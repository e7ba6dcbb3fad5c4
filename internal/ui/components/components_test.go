package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestMenuSkipsDisabled(t *testing.T) {
	var ran string
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b", Action: func() tea.Cmd { ran = "b"; return nil }},
		{Label: "c", Disabled: true},
		{Label: "d", Action: func() tea.Cmd { ran = "d"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}
	m, _ = m.Update(key("down"))
	if m.Selected != 3 {
		t.Errorf("Selected = %d, want 3", m.Selected)
	}
	m, _ = m.Update(key("enter"))
	if ran != "d" {
		t.Errorf("ran = %q, want d", ran)
	}
	m, _ = m.Update(key("up"))
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
}

func TestChoice(t *testing.T) {
	c := NewChoice("¿Cómo te sientes?", []string{"Cansado", "Neutral", "Motivado"})
	if c.Done() {
		t.Fatal("new choice should not be done")
	}
	c, _ = c.Update(key("down"))
	c, _ = c.Update(key("enter"))
	if !c.Done() || c.Chosen != 1 {
		t.Errorf("Chosen = %d, want 1", c.Chosen)
	}

	c.Reset()
	c, _ = c.Update(key("3"))
	if c.Chosen != 2 {
		t.Errorf("Chosen = %d after number key, want 2", c.Chosen)
	}
	c.Reset()
	c, _ = c.Update(key("9"))
	if c.Done() {
		t.Error("out of range number should not choose")
	}
	if !strings.Contains(c.View(), "3) Motivado") {
		t.Error("view should number options")
	}
}

func TestSteps(t *testing.T) {
	got := Steps([]string{"A", "B", "C"}, 1)
	for _, want := range []string{"✓ A", "● B", "○ C"} {
		if !strings.Contains(got, want) {
			t.Errorf("Steps missing %q in %q", want, got)
		}
	}
}

func TestMessage(t *testing.T) {
	if Message("", true) != "" {
		t.Error("empty message should render empty")
	}
	if !strings.Contains(Message("listo", false), "listo") {
		t.Error("message text missing")
	}
}
