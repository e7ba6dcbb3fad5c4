package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/ailearn/internal/session"
	"github.com/abhisek/ailearn/internal/ui/components"
	"github.com/abhisek/ailearn/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	if s.fatalErr != "" {
		return components.Centered(theme.Incorrect.Render(s.fatalErr), width, height)
	}
	cw := components.ContentWidth(width)

	var b strings.Builder
	labels := make([]string, 0, 6)
	for _, st := range sess.Steps() {
		labels = append(labels, st.Label())
	}
	b.WriteString(components.Steps(labels, int(s.flow.Step()-sess.StepDiagnosis)))
	b.WriteString("\n\n")

	if s.busy {
		b.WriteString(s.spinner.View() + " " + theme.Hint.Render(s.busyLabel()))
		return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	}

	g := s.flow.Generated()
	switch s.flow.Step() {
	case sess.StepDiagnosis:
		b.WriteString(components.Card(s.feeling.View(), cw))

	case sess.StepContent:
		s.content.SetWidth(cw)
		s.content.SetHeight(max(height-8, 5))
		b.WriteString(theme.Section.Render(fmt.Sprintf("Carga cognitiva: %s", s.flow.Load())))
		b.WriteString("\n")
		b.WriteString(s.content.View())

	case sess.StepPractice:
		b.WriteString(components.Card(g.Practice, cw))
		if s.flow.ShowAlternative() {
			b.WriteString("\n")
			b.WriteString(theme.Notice.Width(cw).Render(s.flow.Alternative()))
		}
		b.WriteString("\n\n" + s.input.View())

	case sess.StepComprehension:
		b.WriteString(s.feedbackBlock(cw))
		b.WriteString(components.Card(g.Comprehension, cw))
		b.WriteString("\n\n" + s.input.View())

	case sess.StepReflection:
		b.WriteString(s.feedbackBlock(cw))
		b.WriteString(components.Card(g.Metacognition, cw))
		b.WriteString("\n\n" + s.input.View())

	case sess.StepResult:
		b.WriteString(s.feedbackBlock(cw))
		b.WriteString(components.Card(g.NextStep+"\n\n"+theme.Hint.Render("Pulsa Enter para ver tu resultado"), cw))

	case sess.StepDone:
		b.WriteString(renderResult(s.flow.Result(), cw))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(components.Message(s.errMsg, true))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (s *LessonScreen) busyLabel() string {
	switch s.flow.Step() {
	case sess.StepDiagnosis:
		return "Generando contenido personalizado..."
	case sess.StepResult:
		return "Calculando tu resultado..."
	default:
		return "El tutor está revisando tu respuesta..."
	}
}

func (s *LessonScreen) feedbackBlock(cw int) string {
	var parts []string
	if s.notice != "" {
		parts = append(parts, theme.Correct.Render(s.notice))
	}
	if fb := s.flow.Feedback(); fb != "" {
		parts = append(parts, theme.Notice.Width(cw).Render("🤖 "+fb))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n") + "\n\n"
}

func renderResult(r *sess.Result, cw int) string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(theme.Title.Render(r.Detail.MainMessage))
	b.WriteString("\n\n")
	b.WriteString(components.MasteryBar("Dominio", r.Mastery, cw-4).View())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Rendimiento: %s   +%d puntos   %d min\n\n", r.Performance, r.PointsEarned, r.Minutes))

	b.WriteString(theme.Section.Render("Fortalezas") + "\n")
	for _, st := range r.Detail.Strengths {
		b.WriteString("  ✓ " + st + "\n")
	}
	b.WriteString(theme.Section.Render("Para mejorar") + "\n")
	for _, im := range r.Detail.AreasToImprove {
		b.WriteString("  → " + im + "\n")
	}
	b.WriteString("\n" + theme.Hint.Render(r.Detail.NextSteps) + "\n")
	b.WriteString("\n" + theme.Hint.Render("“"+r.Detail.MotivationalQuote+"”") + "\n")
	if r.Next != nil {
		b.WriteString("\nSiguiente lección: " + theme.Selected.Render(r.Next.Title) + "\n")
	}
	return components.Card(b.String(), cw)
}
