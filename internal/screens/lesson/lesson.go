// Package lesson is the screen for the six-step adaptive lesson.
package lesson

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ailearn/internal/pacing"
	"github.com/abhisek/ailearn/internal/profile"
	"github.com/abhisek/ailearn/internal/router"
	"github.com/abhisek/ailearn/internal/screen"
	sess "github.com/abhisek/ailearn/internal/session"
	"github.com/abhisek/ailearn/internal/ui/components"
	"github.com/abhisek/ailearn/internal/ui/layout"
)

const (
	minPracticeChars      = 10
	minComprehensionChars = 5
)

// LessonScreen drives a session.Flow. The pause before a slow step runs as
// a command bound to a context that Close cancels; the flow itself is only
// touched from Update.
type LessonScreen struct {
	svc  screen.Services
	flow *sess.Flow

	ctx    context.Context
	cancel context.CancelFunc

	feeling components.Choice
	input   components.TextInput
	content viewport.Model
	spinner spinner.Model

	busy     bool
	notice   string
	errMsg   string
	fatalErr string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.Closer = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New opens lessonID. An unknown lesson shows an error and any key goes
// back.
func New(svc screen.Services, lessonID string) *LessonScreen {
	svc = svc.WithDefaults()
	ctx, cancel := context.WithCancel(context.Background())

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	s := &LessonScreen{
		svc:     svc,
		ctx:     ctx,
		cancel:  cancel,
		content: viewport.New(viewport.WithWidth(80), viewport.WithHeight(12)),
		spinner: sp,
	}

	var opts []string
	for _, m := range profile.AllMentalStates() {
		opts = append(opts, m.DisplayName())
	}
	s.feeling = components.NewChoice("¿Cómo te sientes ahora mismo?", opts)

	// The screen paces steps itself so the flow never blocks in Update.
	deps := svc.SessionDeps()
	deps.Pacer = pacing.Instant()
	flow, err := sess.Start(deps, lessonID)
	if err != nil {
		if errors.Is(err, sess.ErrLessonNotFound) {
			s.fatalErr = "Lección no encontrada"
		} else {
			s.fatalErr = err.Error()
		}
		return s
	}
	s.flow = flow
	return s
}

func (s *LessonScreen) Init() tea.Cmd { return nil }

func (s *LessonScreen) Title() string {
	if s.flow == nil {
		return "Lección"
	}
	return s.flow.Lesson().Title
}

// Close cancels any pending step.
func (s *LessonScreen) Close() { s.cancel() }

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.flow == nil {
		return []layout.KeyHint{{Key: "Cualquier tecla", Description: "Volver"}}
	}
	switch s.flow.Step() {
	case sess.StepDiagnosis:
		return []layout.KeyHint{{Key: "↑↓", Description: "Navegar"}, {Key: "Enter", Description: "Elegir"}, {Key: "Esc", Description: "Salir"}}
	case sess.StepContent:
		return []layout.KeyHint{{Key: "↑↓", Description: "Desplazar"}, {Key: "Enter", Description: "Continuar"}, {Key: "Esc", Description: "Salir"}}
	case sess.StepDone:
		return []layout.KeyHint{{Key: "Enter", Description: "Volver al panel"}}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Enviar"}, {Key: "Esc", Description: "Salir"}}
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.busy {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case pausedMsg:
		if msg.Err != nil {
			s.busy = false
			if s.stepFailed(msg.Err) && s.flow.Step() == sess.StepDiagnosis {
				s.feeling.Reset()
			}
			return s, nil
		}
		return s.Update(msg.apply(s.ctx))

	case diagnosedMsg:
		s.busy = false
		if s.stepFailed(msg.Err) {
			s.feeling.Reset()
			return s, nil
		}
		s.content.SetContent(s.flow.Content())
		s.content.GotoTop()
		return s, nil

	case practiceCheckedMsg:
		s.busy = false
		if s.stepFailed(msg.Err) {
			return s, nil
		}
		s.notice = msg.Outcome.Message
		return s, s.resetInput(minComprehensionChars)

	case answerCheckedMsg:
		s.busy = false
		if s.stepFailed(msg.Err) {
			return s, nil
		}
		s.notice = ""
		return s, s.resetInput(0)

	case completedMsg:
		s.busy = false
		s.stepFailed(msg.Err)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.inputStep() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// stepFailed records err for display. Validation errors keep the learner on
// the step; a canceled context means the screen is gone.
func (s *LessonScreen) stepFailed(err error) bool {
	switch {
	case err == nil:
		s.errMsg = ""
		return false
	case errors.Is(err, context.Canceled):
		return true
	case errors.Is(err, sess.ErrAnswerTooShort):
		s.errMsg = "Por favor, escribe una respuesta más completa"
	case errors.Is(err, sess.ErrEmptyAnswer):
		s.errMsg = "Escribe una respuesta para continuar"
	default:
		s.errMsg = err.Error()
	}
	return true
}

func (s *LessonScreen) inputStep() bool {
	if s.flow == nil {
		return false
	}
	switch s.flow.Step() {
	case sess.StepPractice, sess.StepComprehension, sess.StepReflection:
		return true
	}
	return false
}

func (s *LessonScreen) resetInput(minLength int) tea.Cmd {
	s.input = components.NewTextInput("Escribe tu respuesta...", 1000, minLength)
	return s.input.Init()
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.flow == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.busy {
		return s, nil
	}

	switch s.flow.Step() {
	case sess.StepDiagnosis:
		s.feeling, _ = s.feeling.Update(msg)
		if !s.feeling.Done() {
			return s, nil
		}
		feeling := profile.AllMentalStates()[s.feeling.Chosen]
		return s, s.run(s.svc.Pacer.Generation, func(ctx context.Context) tea.Msg {
			return diagnosedMsg{Err: s.flow.Diagnose(ctx, feeling)}
		})

	case sess.StepContent:
		if key == "enter" {
			if err := s.flow.Continue(); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			return s, s.resetInput(minPracticeChars)
		}
		var cmd tea.Cmd
		s.content, cmd = s.content.Update(msg)
		return s, cmd

	case sess.StepPractice:
		if key == "enter" {
			answer := s.input.Value()
			return s, s.run(s.svc.Pacer.Feedback, func(ctx context.Context) tea.Msg {
				out, err := s.flow.SubmitPractice(ctx, answer)
				return practiceCheckedMsg{Outcome: out, Err: err}
			})
		}

	case sess.StepComprehension:
		if key == "enter" {
			answer := s.input.Value()
			return s, s.run(s.svc.Pacer.Feedback, func(ctx context.Context) tea.Msg {
				fb, err := s.flow.SubmitComprehension(ctx, answer)
				return answerCheckedMsg{Feedback: fb, Err: err}
			})
		}

	case sess.StepReflection:
		if key == "enter" {
			text := s.input.Value()
			return s, s.run(s.svc.Pacer.Feedback, func(ctx context.Context) tea.Msg {
				fb, err := s.flow.SubmitReflection(ctx, text)
				return answerCheckedMsg{Feedback: fb, Err: err}
			})
		}

	case sess.StepResult:
		if key == "enter" {
			return s, s.run(noPause, func(ctx context.Context) tea.Msg {
				res, err := s.flow.Complete(ctx)
				return completedMsg{Result: res, Err: err}
			})
		}
		return s, nil

	case sess.StepDone:
		if key == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func noPause(ctx context.Context) error { return ctx.Err() }

// run shows the spinner while pause elapses in a command, then hands apply
// back to Update, which runs it against the flow.
func (s *LessonScreen) run(pause func(context.Context) error, apply func(context.Context) tea.Msg) tea.Cmd {
	s.busy = true
	s.errMsg = ""
	ctx := s.ctx
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		if err := pause(ctx); err != nil {
			return pausedMsg{Err: err}
		}
		return pausedMsg{apply: apply}
	})
}
