package chat

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ailearn/internal/progress"
	"github.com/abhisek/ailearn/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func replyOf(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if m, ok := replyOf(c).(replyMsg); ok {
				return m
			}
		}
		return nil
	}
	return msg
}

func newChat(t *testing.T, lessonID string) *ChatScreen {
	t.Helper()
	svc, err := progress.Open(t.Context(), &progress.MemoryBackend{}, progress.Options{})
	if err != nil {
		t.Fatal(err)
	}
	s := New(screen.Services{Progress: svc}, lessonID)
	t.Cleanup(s.Close)
	return s
}

func ask(s *ChatScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(enter())
	s.Update(replyOf(cmd))
}

func TestChatReplies(t *testing.T) {
	s := newChat(t, "py-functions-1")

	ask(s, "¿qué es una función?")
	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("messages = %d, want 3", len(msgs))
	}
	if !msgs[1].FromLearner || msgs[2].FromLearner {
		t.Error("expected learner message followed by tutor reply")
	}
	if !strings.Contains(msgs[2].Text, "def") {
		t.Errorf("reply = %q", msgs[2].Text)
	}
	if s.input.Value() != "" {
		t.Error("input should be cleared after sending")
	}
	if !strings.Contains(s.View(100, 30), "Tú:") {
		t.Error("transcript missing learner line")
	}
}

func TestChatIgnoresBlank(t *testing.T) {
	s := newChat(t, "")
	_, cmd := s.Update(enter())
	if cmd != nil || len(s.Messages()) != 1 {
		t.Error("blank message should not be sent")
	}
}

func TestChatCloseDropsReply(t *testing.T) {
	s := newChat(t, "")
	for _, r := range "hola" {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(enter())
	s.Close()
	s.Update(replyOf(cmd))
	if len(s.Messages()) != 2 {
		t.Errorf("messages = %d, want 2 (no reply after close)", len(s.Messages()))
	}
}
