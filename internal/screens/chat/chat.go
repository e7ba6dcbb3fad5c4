// Package chat is the tutor chat screen.
package chat

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ailearn/internal/screen"
	"github.com/abhisek/ailearn/internal/ui/components"
	"github.com/abhisek/ailearn/internal/ui/layout"
	"github.com/abhisek/ailearn/internal/ui/theme"
)

const greeting = "¡Hola! Soy tu tutor. Pregúntame lo que quieras sobre la lección y te ayudaré a razonarlo."

// Message is one line of the conversation.
type Message struct {
	FromLearner bool
	Text        string
}

type replyMsg struct {
	Text string
	Err  error
}

// ChatScreen is a conversation with the tutor about one lesson.
type ChatScreen struct {
	svc      screen.Services
	lessonID string

	ctx    context.Context
	cancel context.CancelFunc

	messages   []Message
	input      components.TextInput
	transcript viewport.Model
	spinner    spinner.Model
	busy       bool
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.Closer = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New opens a chat about lessonID, which may be empty.
func New(svc screen.Services, lessonID string) *ChatScreen {
	svc = svc.WithDefaults()
	ctx, cancel := context.WithCancel(context.Background())
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	s := &ChatScreen{
		svc:        svc,
		lessonID:   lessonID,
		ctx:        ctx,
		cancel:     cancel,
		messages:   []Message{{Text: greeting}},
		input:      components.NewTextInput("Escribe tu pregunta...", 500, 0),
		transcript: viewport.New(viewport.WithWidth(80), viewport.WithHeight(12)),
		spinner:    sp,
	}
	s.refreshTranscript()
	return s
}

func (s *ChatScreen) Init() tea.Cmd { return s.input.Init() }

func (s *ChatScreen) Title() string { return "Tutor" }

func (s *ChatScreen) Close() { s.cancel() }

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Enviar"},
		{Key: "PgUp/PgDn", Description: "Desplazar"},
		{Key: "Esc", Description: "Salir"},
	}
}

// Messages returns the conversation so far, greeting included.
func (s *ChatScreen) Messages() []Message { return s.messages }

// learnerMessages counts the messages the learner sent.
func (s *ChatScreen) learnerMessages() int {
	n := 0
	for _, m := range s.messages {
		if m.FromLearner {
			n++
		}
	}
	return n
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.busy {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case replyMsg:
		s.busy = false
		if errors.Is(msg.Err, context.Canceled) {
			return s, nil
		}
		s.messages = append(s.messages, Message{Text: msg.Text})
		s.refreshTranscript()
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s, s.send()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			s.transcript, cmd = s.transcript.Update(msg)
			return s, cmd
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) send() tea.Cmd {
	text := strings.TrimSpace(s.input.Value())
	if text == "" || s.busy {
		return nil
	}
	s.messages = append(s.messages, Message{FromLearner: true, Text: text})
	s.input.Clear()
	s.refreshTranscript()

	count := s.learnerMessages()
	s.busy = true
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		if err := s.svc.Pacer.Feedback(s.ctx); err != nil {
			return replyMsg{Err: err}
		}
		return replyMsg{Text: s.svc.Tutor.Reply(text, s.lessonID, count)}
	})
}

func (s *ChatScreen) refreshTranscript() {
	learner := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	tutorStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	var b strings.Builder
	for i, m := range s.messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if m.FromLearner {
			b.WriteString(learner.Render("Tú: "))
		} else {
			b.WriteString(tutorStyle.Render("Tutor: "))
		}
		b.WriteString(theme.Body.Render(m.Text))
	}
	s.transcript.SetContent(b.String())
	s.transcript.GotoBottom()
}

func (s *ChatScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	s.transcript.SetWidth(cw)
	s.transcript.SetHeight(max(height-8, 4))

	var b strings.Builder
	b.WriteString(s.transcript.View())
	b.WriteString("\n\n")
	if s.busy {
		b.WriteString(s.spinner.View() + theme.Hint.Render(" El tutor está pensando...") + "\n")
	}
	b.WriteString(s.input.View())
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
