package evaluation

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ailearn/internal/progress"
	"github.com/abhisek/ailearn/internal/router"
	"github.com/abhisek/ailearn/internal/screen"
	"github.com/abhisek/ailearn/internal/store"
)

type recordingEvents struct {
	store.EventRepo
	evals []store.EvaluationEventData
}

func (r *recordingEvents) AppendEvaluation(_ context.Context, d store.EvaluationEventData) error {
	r.evals = append(r.evals, d)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// gradeMsg finds the grade result in a batch, skipping the spinner tick.
func gradeMsg(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if m, ok := gradeMsg(c).(gradedMsg); ok {
				return m
			}
		}
		return nil
	}
	return msg
}

func newScreen(t *testing.T) (*EvaluationScreen, *recordingEvents) {
	t.Helper()
	svc, err := progress.Open(t.Context(), &progress.MemoryBackend{}, progress.Options{})
	if err != nil {
		t.Fatal(err)
	}
	ev := &recordingEvents{}
	s := New(screen.Services{Progress: svc, Events: ev})
	t.Cleanup(s.Close)
	return s, ev
}

func TestEvaluationStartsOnSelectedTopic(t *testing.T) {
	s, _ := newScreen(t)
	if got := s.topics[s.choice.Selected]; got != progress.DefaultTopic {
		t.Errorf("selected topic = %q, want %q", got, progress.DefaultTopic)
	}
}

func TestEvaluationGrades(t *testing.T) {
	s, ev := newScreen(t)

	s.Update(enter())
	if s.topic != "python" {
		t.Fatalf("topic = %q", s.topic)
	}
	if !strings.Contains(s.View(100, 30), "Explica los conceptos") {
		t.Error("question not shown")
	}

	for _, r := range "Las variables guardan datos de tipo int, str y float" {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(enter())
	if !s.busy {
		t.Fatal("expected busy while grading")
	}
	s.Update(gradeMsg(cmd))

	if s.result == nil {
		t.Fatalf("no result, err %q", s.errMsg)
	}
	if s.result.Score <= 0 {
		t.Errorf("score = %d, want > 0", s.result.Score)
	}
	if len(ev.evals) != 1 || ev.evals[0].Topic != "python" {
		t.Errorf("recorded %+v", ev.evals)
	}
	if !strings.Contains(s.View(100, 40), "Puntuación") {
		t.Error("result not rendered")
	}

	_, cmd = s.Update(enter())
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("enter on result should go back")
	}
}

func TestEvaluationEmptyAnswer(t *testing.T) {
	s, ev := newScreen(t)
	s.Update(enter())

	_, cmd := s.Update(enter())
	s.Update(gradeMsg(cmd))
	if s.result != nil || s.errMsg == "" {
		t.Error("blank answer should be rejected")
	}
	if len(ev.evals) != 0 {
		t.Error("blank answer should not be recorded")
	}
}

func TestEvaluationCloseCancels(t *testing.T) {
	s, _ := newScreen(t)
	s.Update(enter())
	s.Close()
	msg := s.grade(s.ctx, "python", "algo")
	if msg.Err == nil {
		t.Error("expected cancellation error")
	}
}
