package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ailearn/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title     string
	initRan   bool
	closed    bool
	refreshed int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }
func (s *stubScreen) Close()                                  { s.closed = true }
func (s *stubScreen) Refresh() tea.Cmd                        { s.refreshed++; return nil }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopClosesAndRefreshes(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
	if !s2.closed {
		t.Error("expected popped screen to be closed")
	}
	if s1.refreshed != 1 {
		t.Errorf("expected uncovered screen refreshed once, got %d", s1.refreshed)
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
	if s1.closed {
		t.Error("bottom screen must not be closed")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Update(ReplaceScreenMsg{Screen: s3})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
	if !s3.initRan || !s2.closed {
		t.Error("expected replaced screen closed and new one initialised")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Update(PushScreenMsg{Screen: &stubScreen{title: "second"}})
	if r.View(80, 24) != "second" {
		t.Errorf("View = %q, want second", r.View(80, 24))
	}
	r.Update(PopScreenMsg{})
	if r.View(80, 24) != "first" {
		t.Errorf("View = %q, want first", r.View(80, 24))
	}
}
