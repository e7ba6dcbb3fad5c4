// Package practice is the screen for the hands-on topic practice flow.
package practice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ailearn/internal/adaptive"
	"github.com/abhisek/ailearn/internal/lessons"
	"github.com/abhisek/ailearn/internal/router"
	"github.com/abhisek/ailearn/internal/screen"
	sess "github.com/abhisek/ailearn/internal/session"
	"github.com/abhisek/ailearn/internal/ui/components"
	"github.com/abhisek/ailearn/internal/ui/layout"
	"github.com/abhisek/ailearn/internal/ui/theme"
)

type phase int

const (
	phaseFocus phase = iota
	phaseMaterial
	phaseExercise
	phaseCheck
	phaseReflect
	phaseSummary
)

var focusLevels = []lessons.Focus{lessons.FocusLow, lessons.FocusMedium, lessons.FocusHigh}

// PracticeScreen walks one catalog lesson: focus, material, exercise,
// quick check, reflection and summary.
type PracticeScreen struct {
	svc      screen.Services
	lessonID string
	practice *sess.Practice

	phase   phase
	focus   components.Choice
	input   components.TextInput
	summary *sess.PracticeSummary

	// alternative is set once a slow wrong attempt asked for another
	// explanation.
	alternative bool

	notice   string
	errMsg   string
	fatalErr string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New opens the practice flow for lessonID.
func New(svc screen.Services, lessonID string) *PracticeScreen {
	svc = svc.WithDefaults()
	s := &PracticeScreen{
		svc:      svc,
		lessonID: lessonID,
		focus: components.NewChoice("¿Qué tan concentrado te sientes?",
			[]string{"Poco concentrado", "Normal", "Muy concentrado"}),
	}
	l, err := svc.Catalog.Lookup(lessonID)
	switch {
	case err != nil:
		s.fatalErr = "Lección no encontrada"
	case l.Material == nil:
		s.fatalErr = "Esta lección todavía no tiene práctica guiada"
	}
	return s
}

func (s *PracticeScreen) Init() tea.Cmd { return nil }

func (s *PracticeScreen) Title() string {
	if s.practice == nil {
		return "Práctica"
	}
	return s.practice.Lesson().Title
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseMaterial:
		return []layout.KeyHint{{Key: "Enter", Description: "Ir al ejercicio"}, {Key: "Esc", Description: "Salir"}}
	case phaseSummary:
		return []layout.KeyHint{{Key: "Enter", Description: "Volver al panel"}}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Continuar"}, {Key: "Esc", Description: "Salir"}}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.hasInput() {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.fatalErr != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	ctx := context.Background()
	enter := kmsg.String() == "enter"

	switch s.phase {
	case phaseFocus:
		s.focus, _ = s.focus.Update(msg)
		if !s.focus.Done() {
			return s, nil
		}
		p, err := sess.StartPractice(s.svc.SessionDeps(), s.lessonID, focusLevels[s.focus.Chosen])
		if err != nil {
			s.fatalErr = err.Error()
			return s, nil
		}
		s.practice = p
		s.phase = phaseMaterial
		return s, nil

	case phaseMaterial:
		if enter {
			s.phase = phaseExercise
			s.practice.StartExercise()
			return s, s.newInput(s.practice.Lesson().Material.Exercise.Placeholder)
		}
		return s, nil

	case phaseExercise:
		if enter {
			out, err := s.practice.VerifyExercise(ctx, s.input.Value())
			s.notice = out.Message
			if s.setErr(err) {
				return s, nil
			}
			if out.Pace.Action != adaptive.ActionMaintain {
				s.notice += "\n" + out.Pace.Message
			}
			if out.Pace.Action == adaptive.ActionOfferAlternative {
				s.alternative = true
			}
			if out.Passed {
				s.phase = phaseCheck
				return s, s.newInput("Tu respuesta...")
			}
			return s, nil
		}

	case phaseCheck:
		if enter {
			passed, err := s.practice.CheckAnswer(ctx, s.input.Value())
			if s.setErr(err) {
				return s, nil
			}
			s.notice = "¡Correcto!"
			if !passed {
				s.notice = "Repasa el material cuando puedas."
			}
			s.phase = phaseReflect
			return s, s.newInput("¿Qué te llevas de esta lección?")
		}

	case phaseReflect:
		if enter {
			if s.setErr(s.practice.Reflect(ctx, s.input.Value())) {
				return s, nil
			}
			sum, err := s.practice.Finish(ctx)
			if s.setErr(err) {
				return s, nil
			}
			s.summary = sum
			s.notice = ""
			s.phase = phaseSummary
			return s, nil
		}

	case phaseSummary:
		if enter {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PracticeScreen) hasInput() bool {
	return s.phase == phaseExercise || s.phase == phaseCheck || s.phase == phaseReflect
}

func (s *PracticeScreen) newInput(placeholder string) tea.Cmd {
	s.input = components.NewTextInput(strings.ReplaceAll(placeholder, "\n", " "), 2000, 0)
	return s.input.Init()
}

func (s *PracticeScreen) setErr(err error) bool {
	switch {
	case err == nil:
		s.errMsg = ""
		return false
	case errors.Is(err, sess.ErrAnswerTooShort):
		s.errMsg = "Escribe más código para verificar"
	case errors.Is(err, sess.ErrEmptyAnswer):
		s.errMsg = "Escribe una respuesta para continuar"
	default:
		s.errMsg = err.Error()
	}
	return true
}

func (s *PracticeScreen) View(width, height int) string {
	if s.fatalErr != "" {
		return components.Centered(theme.Incorrect.Render(s.fatalErr), width, height)
	}
	cw := components.ContentWidth(width)

	var b strings.Builder
	if s.practice != nil {
		labels := []string{"Material", "Ejercicio", "Comprobación", "Reflexión", "Resultado"}
		b.WriteString(components.Steps(labels, int(s.phase-phaseMaterial)))
		b.WriteString("\n\n")
		b.WriteString(theme.Section.Render(s.practice.Objective()))
		b.WriteString("\n\n")
	}

	switch s.phase {
	case phaseFocus:
		b.WriteString(components.Card(s.focus.View(), cw))

	case phaseMaterial:
		b.WriteString(components.Card(s.materialView(), cw))

	case phaseExercise:
		ex := s.practice.Lesson().Material.Exercise
		b.WriteString(components.Card(theme.Section.Render(ex.Title)+"\n\n"+ex.Description, cw))
		if s.alternative {
			b.WriteString("\n\n" + theme.Hint.Render(lessons.AlternativeExplanation(s.practice.Lesson().Title)))
		}
		b.WriteString("\n\n" + s.input.View())
		b.WriteString(fmt.Sprintf("\n%s", theme.Hint.Render(fmt.Sprintf("Intentos: %d", s.practice.Attempts()))))

	case phaseCheck:
		b.WriteString(components.Card("¿Qué palabra clave o función usaste en el ejercicio?", cw))
		b.WriteString("\n\n" + s.input.View())

	case phaseReflect:
		b.WriteString(components.Card("¿Qué aprendiste hoy? Escribe una frase.", cw))
		b.WriteString("\n\n" + s.input.View())

	case phaseSummary:
		sum := s.summary
		body := fmt.Sprintf("%s\n\n+%d puntos   Racha: %d   Dificultad: %s   Intentos: %d",
			theme.Title.Render("¡Lección completada!"), sum.PointsEarned, sum.Streak, sum.Difficulty, sum.Attempts)
		b.WriteString(components.Card(body+"\n\n"+s.practice.Lesson().Material.Summary, cw))
	}

	if s.notice != "" {
		b.WriteString("\n" + components.Message(s.notice, false))
	}
	if s.errMsg != "" {
		b.WriteString("\n" + components.Message(s.errMsg, true))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *PracticeScreen) materialView() string {
	m := s.practice.Lesson().Material
	if s.practice.Simplified() {
		return m.Introduction + "\n\n" + theme.Hint.Render(m.Summary)
	}
	return strings.Join([]string{
		m.Introduction,
		m.Explanation,
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(m.CodeExample),
	}, "\n\n")
}
