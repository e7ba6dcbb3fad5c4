// Package history shows the learner's recent activity.
package history

import (
	"context"
	"fmt"
	"image/color"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ailearn/internal/progress"
	"github.com/abhisek/ailearn/internal/router"
	"github.com/abhisek/ailearn/internal/screen"
	"github.com/abhisek/ailearn/internal/store"
	"github.com/abhisek/ailearn/internal/ui/layout"
	"github.com/abhisek/ailearn/internal/ui/theme"
)

const recentLimit = 50

type tab int

const (
	tabEvents tab = iota
	tabReflections
	tabLessons
)

var tabNames = []string{"Actividad", "Reflexiones", "Lecciones"}

type historyLoadedMsg struct {
	Events []store.Event
	Err    error
}

// HistoryScreen lists the event log, reflections and finished lessons.
type HistoryScreen struct {
	svc      screen.Services
	state    progress.State
	events   []store.Event
	tab      tab
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(svc screen.Services) *HistoryScreen {
	svc = svc.WithDefaults()
	return &HistoryScreen{
		svc:      svc,
		state:    svc.Progress.Snapshot(),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	events := s.svc.Events
	if events == nil {
		return func() tea.Msg { return historyLoadedMsg{} }
	}
	return func() tea.Msg {
		evs, err := events.Recent(context.Background(), store.QueryOpts{Limit: recentLimit})
		return historyLoadedMsg{Events: evs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Historial"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Sección"},
		{Key: "Enter", Description: "Detalle"},
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.tab = (s.tab + 1) % tab(len(tabNames))
			s.selected = 0
			clear(s.expanded)
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < s.rows()-1 {
				s.selected++
			}
		case "enter":
			if s.tab == tabReflections {
				s.expanded[s.selected] = !s.expanded[s.selected]
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) rows() int {
	switch s.tab {
	case tabReflections:
		return len(s.state.Reflections)
	case tabLessons:
		return len(s.state.LessonHistory)
	default:
		return len(s.events)
	}
}

func (s *HistoryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTabs()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Subtitle.Render(
		fmt.Sprintf("%d lecciones completadas · %.1f horas de estudio",
			len(s.state.CompletedLessons), s.state.TotalHours))))
	b.WriteString("\n\n")

	switch s.tab {
	case tabEvents:
		b.WriteString(s.renderEvents(width))
	case tabReflections:
		b.WriteString(s.renderReflections(width))
	case tabLessons:
		b.WriteString(s.renderLessons(width))
	}
	return b.String()
}

func (s *HistoryScreen) renderTabs() string {
	var parts []string
	for i, name := range tabNames {
		if tab(i) == s.tab {
			parts = append(parts, theme.Selected.Render("["+name+"]"))
		} else {
			parts = append(parts, theme.Hint.Render(" "+name+" "))
		}
	}
	return strings.Join(parts, "  ")
}

func empty(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
		Render("\n  " + text)
}

func (s *HistoryScreen) line(width, i int, text string, fg color.Color) string {
	prefix := "  "
	style := lipgloss.NewStyle().Foreground(fg)
	if i == s.selected {
		prefix = "> "
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(prefix+text)) + "\n"
}

func (s *HistoryScreen) renderEvents(width int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return empty(width, "Cargando historial...")
	}
	if len(s.events) == 0 {
		return empty(width, "Todavía no hay actividad. ¡Empieza una lección!")
	}
	var b strings.Builder
	for i, ev := range s.events {
		text := fmt.Sprintf("%s  %-10s  %s", ev.Timestamp.Local().Format("02 Jan 15:04"), kindLabel(ev.Kind), ev.Summary)
		b.WriteString(s.line(width, i, text, kindColor(ev.Kind)))
	}
	return b.String()
}

func (s *HistoryScreen) renderReflections(width int) string {
	if len(s.state.Reflections) == 0 {
		return empty(width, "Aún no has escrito reflexiones.")
	}
	refs := slices.Clone(s.state.Reflections)
	slices.Reverse(refs)

	var b strings.Builder
	for i, r := range refs {
		title := r.LessonID
		if l, err := s.svc.Catalog.Lookup(r.LessonID); err == nil {
			title = l.Title
		}
		text := r.Text
		if !s.expanded[i] && len([]rune(text)) > 40 {
			text = string([]rune(text)[:40]) + "…"
		}
		b.WriteString(s.line(width, i, fmt.Sprintf("%s  %s: %s", r.Date.Local().Format("02 Jan"), title, text), theme.Text))
	}
	return b.String()
}

func (s *HistoryScreen) renderLessons(width int) string {
	if len(s.state.LessonHistory) == 0 {
		return empty(width, "Aún no has terminado ninguna lección.")
	}
	recs := slices.Clone(s.state.LessonHistory)
	slices.Reverse(recs)

	var b strings.Builder
	for i, r := range recs {
		text := fmt.Sprintf("%s  %.0f%% dominio  %.0f min", r.Date.Local().Format("02 Jan 2006"), r.Accuracy, r.TimeSpent)
		b.WriteString(s.line(width, i, text, accuracyColor(r.Accuracy)))
	}
	return b.String()
}

func kindLabel(kind string) string {
	switch kind {
	case store.KindLesson:
		return "lección"
	case store.KindAdaptation:
		return "adaptación"
	case store.KindEvaluation:
		return "evaluación"
	default:
		return kind
	}
}

func kindColor(kind string) color.Color {
	switch kind {
	case store.KindAdaptation:
		return theme.Accent
	case store.KindEvaluation:
		return theme.Secondary
	default:
		return theme.Text
	}
}

func accuracyColor(acc float64) color.Color {
	switch {
	case acc >= 90:
		return theme.Success
	case acc >= 70:
		return theme.Secondary
	default:
		return theme.Warning
	}
}
