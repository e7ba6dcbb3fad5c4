// Package evaluation is the screen for graded written answers.
package evaluation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	eval "github.com/abhisek/ailearn/internal/evaluation"
	"github.com/abhisek/ailearn/internal/router"
	"github.com/abhisek/ailearn/internal/screen"
	"github.com/abhisek/ailearn/internal/store"
	"github.com/abhisek/ailearn/internal/ui/components"
	"github.com/abhisek/ailearn/internal/ui/layout"
	"github.com/abhisek/ailearn/internal/ui/theme"
)

type gradedMsg struct {
	Result eval.Result
	Err    error
}

// EvaluationScreen asks for a written explanation of a topic and shows
// the per-concept grade.
type EvaluationScreen struct {
	svc    screen.Services
	topics []string

	ctx    context.Context
	cancel context.CancelFunc

	choice  components.Choice
	input   components.TextInput
	spinner spinner.Model

	topic  string
	busy   bool
	result *eval.Result
	errMsg string
}

var _ screen.Screen = (*EvaluationScreen)(nil)
var _ screen.Closer = (*EvaluationScreen)(nil)
var _ screen.KeyHintProvider = (*EvaluationScreen)(nil)

// New creates the evaluation screen. The topic list starts on the
// learner's selected topic when it has a rubric.
func New(svc screen.Services) *EvaluationScreen {
	svc = svc.WithDefaults()
	ctx, cancel := context.WithCancel(context.Background())

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	s := &EvaluationScreen{
		svc:     svc,
		topics:  svc.Evaluator.Topics(),
		ctx:     ctx,
		cancel:  cancel,
		spinner: sp,
	}
	names := make([]string, len(s.topics))
	selected := svc.Progress.Snapshot().SelectedTopic
	for i, t := range s.topics {
		names[i] = svc.Catalog.TopicName(t)
	}
	s.choice = components.NewChoice("¿Sobre qué tema quieres evaluarte?", names)
	for i, t := range s.topics {
		if t == selected {
			s.choice.Selected = i
		}
	}
	return s
}

func (s *EvaluationScreen) Init() tea.Cmd { return nil }

func (s *EvaluationScreen) Title() string { return "Evaluación" }

// Close cancels a pending grade.
func (s *EvaluationScreen) Close() { s.cancel() }

func (s *EvaluationScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.result != nil:
		return []layout.KeyHint{{Key: "Enter", Description: "Volver"}, {Key: "r", Description: "Reintentar"}}
	case s.topic == "":
		return []layout.KeyHint{{Key: "↑↓", Description: "Navegar"}, {Key: "Enter", Description: "Elegir"}, {Key: "Esc", Description: "Salir"}}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Evaluar"}, {Key: "Esc", Description: "Salir"}}
	}
}

func (s *EvaluationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.busy {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case gradedMsg:
		s.busy = false
		switch {
		case errors.Is(msg.Err, context.Canceled):
		case errors.Is(msg.Err, eval.ErrEmptyAnswer):
			s.errMsg = "Escribe una respuesta para evaluar"
		case msg.Err != nil:
			s.errMsg = msg.Err.Error()
		default:
			s.errMsg = ""
			s.result = &msg.Result
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.topic != "" && s.result == nil {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *EvaluationScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.busy {
		return s, nil
	}
	key := msg.String()

	switch {
	case s.result != nil:
		switch key {
		case "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			s.result = nil
			s.input.Clear()
		}
		return s, nil

	case s.topic == "":
		if len(s.topics) == 0 {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.choice, _ = s.choice.Update(msg)
		if s.choice.Done() {
			s.topic = s.topics[s.choice.Chosen]
			s.input = components.NewTextInput("Explica con tus palabras...", 2000, 0)
			return s, s.input.Init()
		}
		return s, nil

	case key == "enter":
		answer := s.input.Value()
		topic := s.topic
		s.busy = true
		return s, tea.Batch(s.spinner.Tick, func() tea.Msg {
			return s.grade(s.ctx, topic, answer)
		})
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// grade waits out the evaluation pause, scores the answer and records it
// in the event log.
func (s *EvaluationScreen) grade(ctx context.Context, topic, answer string) gradedMsg {
	if err := s.svc.Pacer.Evaluation(ctx); err != nil {
		return gradedMsg{Err: err}
	}
	res, err := s.svc.Evaluator.Evaluate(topic, answer)
	if err != nil {
		return gradedMsg{Err: err}
	}
	if s.svc.Events != nil {
		ev := store.EvaluationEventData{
			Topic:        res.Topic,
			Score:        res.Score,
			Concepts:     len(res.Evaluations),
			AnswerLength: utf8.RuneCountInString(answer),
		}
		if err := s.svc.Events.AppendEvaluation(ctx, ev); err != nil {
			s.svc.Logger.Warn("record evaluation", zap.Error(err))
		}
	}
	return gradedMsg{Result: res}
}

func (s *EvaluationScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if len(s.topics) == 0 {
		return components.Centered(theme.Hint.Render("No hay temas para evaluar."), width, height)
	}

	var b strings.Builder
	switch {
	case s.topic == "":
		b.WriteString(components.Card(s.choice.View(), cw))

	case s.result != nil:
		b.WriteString(renderResult(*s.result, cw))

	default:
		q, focus := s.svc.Evaluator.Question(s.topic, s.svc.Catalog.TopicName(s.topic))
		b.WriteString(components.Card(theme.Section.Render(q)+"\n\n"+theme.Hint.Render(focus), cw))
		b.WriteString("\n\n" + s.input.View())
		if s.busy {
			b.WriteString("\n\n" + s.spinner.View() + " Evaluando tu respuesta...")
		}
	}
	if s.errMsg != "" {
		b.WriteString("\n" + components.Message(s.errMsg, true))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func renderResult(res eval.Result, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Puntuación: %d/100", res.Score)))
	b.WriteString("\n\n")
	for _, c := range res.Evaluations {
		style := theme.Incorrect
		mark := "✗"
		switch c.Status {
		case eval.StatusCorrect:
			style, mark = theme.Correct, "✓"
		case eval.StatusPartial:
			style, mark = theme.Partial, "~"
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %s (%d/%d)", mark, c.Concept, c.Score, c.MaxScore)))
		b.WriteString("\n  " + theme.Body.Render(c.Feedback) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(components.MasteryBar("Dominio", res.Score, cw-10).View())
	return components.Card(b.String(), cw)
}
