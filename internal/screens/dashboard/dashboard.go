// Package dashboard is the home screen shown after onboarding.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/ailearn/internal/adaptive"
	"github.com/abhisek/ailearn/internal/lessons"
	"github.com/abhisek/ailearn/internal/progress"
	"github.com/abhisek/ailearn/internal/router"
	"github.com/abhisek/ailearn/internal/screen"
	"github.com/abhisek/ailearn/internal/screens/chat"
	"github.com/abhisek/ailearn/internal/screens/evaluation"
	"github.com/abhisek/ailearn/internal/screens/history"
	"github.com/abhisek/ailearn/internal/screens/lesson"
	"github.com/abhisek/ailearn/internal/screens/onboarding"
	"github.com/abhisek/ailearn/internal/screens/practice"
	"github.com/abhisek/ailearn/internal/ui/components"
	"github.com/abhisek/ailearn/internal/ui/layout"
	"github.com/abhisek/ailearn/internal/ui/theme"
)

// DashboardScreen shows the learner's stats, the recommended lesson and
// the main menu.
type DashboardScreen struct {
	svc    screen.Services
	state  progress.State
	rec    lessons.Recommendation
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)
var _ router.Refresher = (*DashboardScreen)(nil)

// New creates the dashboard.
func New(svc screen.Services) *DashboardScreen {
	d := &DashboardScreen{svc: svc.WithDefaults()}
	d.reload()
	return d
}

func (d *DashboardScreen) Init() tea.Cmd { return nil }

func (d *DashboardScreen) Title() string { return "Panel" }

// Refresh reloads stats and the recommendation after a child screen
// closes.
func (d *DashboardScreen) Refresh() tea.Cmd {
	d.reload()
	return nil
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "t", Description: "Cambiar tema"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

func (d *DashboardScreen) reload() {
	d.state = d.svc.Progress.Snapshot()
	d.rec = d.svc.Catalog.Recommend(d.state.SelectedTopic, d.state.CompletedLessons, d.state.MentalState)

	selected := d.menu.Selected
	d.menu = components.NewMenu(d.menuItems())
	if selected > 0 && selected < len(d.menu.Items) && !d.menu.Items[selected].Disabled {
		d.menu.Selected = selected
	}
}

// practiceLesson is the first recommended lesson with guided material,
// preferring ones not completed yet.
func (d *DashboardScreen) practiceLesson() (lessons.CatalogLesson, bool) {
	var fallback *lessons.CatalogLesson
	for _, l := range d.rec.Lessons {
		if l.Material == nil {
			continue
		}
		if !d.state.HasCompleted(l.ID) {
			return l, true
		}
		if fallback == nil {
			fallback = &l
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return lessons.CatalogLesson{}, false
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (d *DashboardScreen) menuItems() []components.MenuItem {
	svc := d.svc

	next := components.MenuItem{Label: "Continuar aprendiendo", Disabled: true}
	chatLesson := ""
	if n := d.rec.Next; n != nil {
		id := n.ID
		chatLesson = id
		next = components.MenuItem{
			Label:  "Continuar aprendiendo",
			Detail: fmt.Sprintf("%s · %d min", n.Title, n.Minutes),
			Action: func() tea.Cmd { return push(lesson.New(svc, id)) },
		}
	}

	guided := components.MenuItem{Label: "Práctica guiada", Disabled: true}
	if l, ok := d.practiceLesson(); ok {
		id := l.ID
		guided = components.MenuItem{
			Label:  "Práctica guiada",
			Detail: l.Title,
			Action: func() tea.Cmd { return push(practice.New(svc, id)) },
		}
	}

	return []components.MenuItem{
		next,
		guided,
		{Label: "Todas las lecciones", Detail: d.svc.Catalog.TopicName(d.state.SelectedTopic),
			Action: func() tea.Cmd { return push(NewLessonList(svc)) }},
		{Label: "Evaluación escrita", Action: func() tea.Cmd { return push(evaluation.New(svc)) }},
		{Label: "Hablar con el tutor", Action: func() tea.Cmd { return push(chat.New(svc, chatLesson)) }},
		{Label: "Historial", Action: func() tea.Cmd { return push(history.New(svc)) }},
		{Label: "Reiniciar perfil", Action: d.resetProfile},
		{Label: "Salir", Action: func() tea.Cmd { return tea.Quit }},
	}
}

// resetProfile clears the onboarding answers and sends the learner back
// to the wizard. Progress is kept.
func (d *DashboardScreen) resetProfile() tea.Cmd {
	if err := d.svc.Progress.ResetOnboarding(context.Background()); err != nil {
		d.svc.Logger.Error("reset onboarding", zap.Error(err))
		d.errMsg = err.Error()
		return nil
	}
	svc := d.svc
	next := func() screen.Screen { return New(svc) }
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: onboarding.New(svc, next)}
	}
}

// cycleTopic switches the selected topic to the next catalog topic.
func (d *DashboardScreen) cycleTopic() {
	topics := d.svc.Catalog.Topics()
	if len(topics) == 0 {
		return
	}
	i := 0
	for j, t := range topics {
		if t.ID == d.state.SelectedTopic {
			i = (j + 1) % len(topics)
			break
		}
	}
	if err := d.svc.Progress.SetSelectedTopic(context.Background(), topics[i].ID); err != nil {
		d.errMsg = err.Error()
		return
	}
	d.errMsg = ""
	d.reload()
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "t" {
		d.cycleTopic()
		return d, nil
	}
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	p := d.svc.Progress.Profile()

	greeting := theme.Title.Render("¡Hola de nuevo!")
	if d.state.Goal != "" {
		greeting += "\n" + theme.Subtitle.Render("Objetivo: "+d.state.Goal)
	}

	stats := fmt.Sprintf("%s   %s   %s   %s",
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("★ %d puntos", d.state.TotalPoints)),
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(fmt.Sprintf("🔥 %d racha", d.state.CurrentStreak)),
		theme.Body.Render(fmt.Sprintf("%d lecciones", len(d.state.CompletedLessons))),
		theme.Body.Render(fmt.Sprintf("%.1f h", d.state.TotalHours)),
	)

	var rec string
	if d.rec.Next != nil {
		rec = fmt.Sprintf("%s\n%s\n%s",
			theme.Section.Render("Recomendado para ti"),
			theme.Body.Render(d.rec.Next.Title),
			theme.Hint.Render(fmt.Sprintf("Sesión sugerida de %d minutos · Te sientes %s",
				d.rec.Minutes, strings.ToLower(p.MentalState.Effective().DisplayName()))),
		)
		if avg, ok := d.state.AverageLessonMinutes(); ok {
			rec += "\n" + theme.Hint.Render(fmt.Sprintf("Según tu ritmo, lecciones de %d minutos", adaptive.RecommendedLength(p, avg)))
		}
	} else {
		rec = theme.Hint.Render("No hay lecciones para este tema todavía.")
	}

	sections := []string{
		greeting,
		components.Card(stats, cw),
		components.Card(rec, cw),
		d.menu.View(),
	}
	if d.errMsg != "" {
		sections = append(sections, components.Message(d.errMsg, true))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n\n"))
}
