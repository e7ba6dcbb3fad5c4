// Package onboarding is the first-run wizard screen.
package onboarding

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	wiz "github.com/abhisek/ailearn/internal/onboarding"
	"github.com/abhisek/ailearn/internal/profile"
	"github.com/abhisek/ailearn/internal/router"
	"github.com/abhisek/ailearn/internal/screen"
	"github.com/abhisek/ailearn/internal/ui/components"
	"github.com/abhisek/ailearn/internal/ui/layout"
	"github.com/abhisek/ailearn/internal/ui/theme"
)

// Level page options, after the quiz entry.
const (
	levelQuiz = iota
	levelBeginner
	levelIntermediate
	levelAdvanced
	levelSkip
)

type savedMsg struct{ Err error }

// OnboardingScreen runs the wizard and saves the answers. When done it
// replaces itself with the screen built by next.
type OnboardingScreen struct {
	svc    screen.Services
	wizard *wiz.Wizard
	next   func() screen.Screen

	choice   components.Choice
	goal     components.TextInput
	inQuiz   bool
	saving   bool
	errMsg   string
	suggests int
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)
var _ screen.EscapeHandler = (*OnboardingScreen)(nil)

// New creates the onboarding screen.
func New(svc screen.Services, next func() screen.Screen) *OnboardingScreen {
	svc = svc.WithDefaults()
	s := &OnboardingScreen{
		svc:    svc,
		wizard: wiz.New(svc.Catalog),
		next:   next,
		goal:   components.NewTextInput("Escribe tu objetivo...", 200, 0),
	}
	s.prepare()
	return s
}

func (s *OnboardingScreen) Init() tea.Cmd { return nil }

func (s *OnboardingScreen) Title() string { return "Bienvenida" }

func (s *OnboardingScreen) HandlesEscape() bool { return true }

func (s *OnboardingScreen) KeyHints() []layout.KeyHint {
	if s.wizard.Step() == wiz.StepGoal {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Sugerencia"},
			{Key: "Enter", Description: "Terminar"},
			{Key: "Esc", Description: "Atrás"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Esc", Description: "Atrás"},
	}
}

// prepare builds the choice for the current page.
func (s *OnboardingScreen) prepare() {
	switch s.wizard.Step() {
	case wiz.StepTopic:
		topics := s.svc.Catalog.Topics()
		opts := make([]string, len(topics))
		for i, t := range topics {
			opts[i] = t.Name
		}
		s.choice = components.NewChoice("¿Qué quieres aprender?", opts)
	case wiz.StepStyle:
		var opts []string
		for _, st := range profile.AllStyles() {
			opts = append(opts, st.DisplayName())
		}
		s.choice = components.NewChoice("¿Cómo aprendes mejor?", opts)
	case wiz.StepLevel:
		if s.inQuiz {
			q, i, ok := s.wizard.Quiz().Current()
			if ok {
				prompt := fmt.Sprintf("Pregunta %d de %d\n\n%s", i+1, s.wizard.Quiz().Len(), q.Prompt)
				s.choice = components.NewChoice(prompt, q.Options)
			}
			return
		}
		s.choice = components.NewChoice(
			fmt.Sprintf("¿Cuál es tu nivel en %s?", s.wizard.TopicName()),
			[]string{"Hacer evaluación rápida", "Principiante", "Intermedio", "Avanzado", "Omitir"},
		)
	case wiz.StepState:
		var opts []string
		for _, m := range profile.AllMentalStates() {
			opts = append(opts, m.DisplayName())
		}
		s.choice = components.NewChoice("¿Cómo te sientes hoy?", opts)
	}
}

func (s *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.saving = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: s.next()} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.wizard.Step() == wiz.StepGoal {
		var cmd tea.Cmd
		s.goal, cmd = s.goal.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *OnboardingScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.saving {
		return s, nil
	}
	key := msg.String()

	if key == "esc" {
		s.errMsg = ""
		if s.inQuiz {
			s.inQuiz = false
		} else {
			s.wizard.Back()
		}
		s.prepare()
		return s, nil
	}

	if s.wizard.Step() == wiz.StepGoal {
		switch key {
		case "tab":
			sugg := s.wizard.GoalSuggestions()
			s.goal.Model.SetValue(sugg[s.suggests%len(sugg)])
			s.goal.Model.CursorEnd()
			s.suggests++
			return s, nil
		case "enter":
			if err := s.wizard.SetGoal(s.goal.Value()); err != nil {
				s.errMsg = "Escribe un objetivo para continuar"
				return s, nil
			}
			s.saving = true
			return s, s.save()
		}
		var cmd tea.Cmd
		s.goal, cmd = s.goal.Update(msg)
		return s, cmd
	}

	s.choice, _ = s.choice.Update(msg)
	if !s.choice.Done() {
		return s, nil
	}
	if err := s.apply(s.choice.Chosen); err != nil {
		s.errMsg = err.Error()
		s.choice.Reset()
		return s, nil
	}
	s.errMsg = ""
	s.prepare()
	if s.wizard.Step() == wiz.StepGoal {
		return s, s.goal.Init()
	}
	return s, nil
}

// apply feeds the chosen option to the wizard.
func (s *OnboardingScreen) apply(i int) error {
	switch s.wizard.Step() {
	case wiz.StepTopic:
		return s.wizard.SetTopic(s.svc.Catalog.Topics()[i].ID)
	case wiz.StepStyle:
		return s.wizard.SetStyle(profile.AllStyles()[i])
	case wiz.StepLevel:
		if s.inQuiz {
			quiz := s.wizard.Quiz()
			if err := quiz.Answer(i); err != nil {
				return err
			}
			if quiz.Done() {
				s.inQuiz = false
				return s.wizard.FinishQuiz()
			}
			return nil
		}
		switch i {
		case levelQuiz:
			s.inQuiz = true
			return nil
		case levelSkip:
			return s.wizard.SkipLevel()
		default:
			return s.wizard.SetLevel(profile.AllLevels()[i-levelBeginner])
		}
	case wiz.StepState:
		return s.wizard.SetState(profile.AllMentalStates()[i])
	}
	return nil
}

func (s *OnboardingScreen) save() tea.Cmd {
	return func() tea.Msg {
		return savedMsg{Err: s.wizard.Save(context.Background(), s.svc.Progress)}
	}
}

func (s *OnboardingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Configuremos tu aprendizaje"))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar(
		fmt.Sprintf("Paso %d de %d", int(s.wizard.Step())+1, wiz.Total),
		float64(s.wizard.Step())/float64(wiz.Total), false, cw-4,
	).View())
	b.WriteString("\n\n")

	switch {
	case s.saving:
		b.WriteString(theme.Hint.Render("Guardando tu perfil..."))
	case s.wizard.Step() == wiz.StepGoal:
		b.WriteString(lipgloss.NewStyle().Bold(true).Render("¿Cuál es tu objetivo?"))
		b.WriteString("\n\n")
		b.WriteString(s.goal.View())
		b.WriteString("\n\n")
		for _, sg := range s.wizard.GoalSuggestions() {
			b.WriteString(theme.Hint.Render("• " + sg))
			b.WriteString("\n")
		}
	default:
		b.WriteString(s.choice.View())
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(components.Message(s.errMsg, true))
	}
	return components.Centered(components.Card(b.String(), cw), width, height)
}
