package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ailearn/internal/lessons"
	"github.com/abhisek/ailearn/internal/router"
	"github.com/abhisek/ailearn/internal/screen"
	"github.com/abhisek/ailearn/internal/screens/lesson"
	"github.com/abhisek/ailearn/internal/screens/practice"
	"github.com/abhisek/ailearn/internal/ui/components"
	"github.com/abhisek/ailearn/internal/ui/layout"
	"github.com/abhisek/ailearn/internal/ui/theme"
)

// LessonListScreen lists the lessons of the selected topic with their
// mastery.
type LessonListScreen struct {
	svc      screen.Services
	lessons  []lessons.CatalogLesson
	mastery  map[string]int
	done     map[string]bool
	selected int
}

var _ screen.Screen = (*LessonListScreen)(nil)
var _ screen.KeyHintProvider = (*LessonListScreen)(nil)
var _ router.Refresher = (*LessonListScreen)(nil)

// NewLessonList creates the lesson list for the learner's topic.
func NewLessonList(svc screen.Services) *LessonListScreen {
	s := &LessonListScreen{svc: svc.WithDefaults()}
	s.Refresh()
	return s
}

func (s *LessonListScreen) Init() tea.Cmd { return nil }

func (s *LessonListScreen) Title() string {
	return "Lecciones de " + s.svc.Catalog.TopicName(s.svc.Progress.Snapshot().SelectedTopic)
}

func (s *LessonListScreen) Refresh() tea.Cmd {
	st := s.svc.Progress.Snapshot()
	s.lessons = s.svc.Catalog.ForTopic(st.SelectedTopic)
	s.mastery = st.LessonMastery
	s.done = make(map[string]bool, len(st.CompletedLessons))
	for _, id := range st.CompletedLessons {
		s.done[id] = true
	}
	return nil
}

func (s *LessonListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Lección"},
		{Key: "p", Description: "Práctica"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *LessonListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || len(s.lessons) == 0 {
		return s, nil
	}
	switch k.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.lessons)-1 {
			s.selected++
		}
	case "enter":
		return s, push(lesson.New(s.svc, s.lessons[s.selected].ID))
	case "p":
		if l := s.lessons[s.selected]; l.Material != nil {
			return s, push(practice.New(s.svc, l.ID))
		}
	}
	return s, nil
}

func (s *LessonListScreen) View(width, height int) string {
	if len(s.lessons) == 0 {
		return components.Centered(theme.Hint.Render("Este tema no tiene lecciones."), width, height)
	}
	cw := components.ContentWidth(width)
	barWidth := max(cw-40, 10)

	var b strings.Builder
	for i, l := range s.lessons {
		mark := theme.StepPending.Render("○")
		if s.done[l.ID] {
			mark = theme.StepDone.Render("✓")
		}
		label := fmt.Sprintf("%d. %s", l.Order, l.Title)
		style := theme.Unselected
		prefix := "  "
		if i == s.selected {
			style = theme.Selected
			prefix = "▸ "
		}
		extra := theme.Hint.Render(fmt.Sprintf(" %d min", l.Minutes))
		if l.Material != nil {
			extra += theme.Hint.Render(" · práctica")
		}
		b.WriteString(fmt.Sprintf("%s%s %s%s\n", prefix, mark, style.Render(label), extra))
		b.WriteString("    " + components.MasteryBar("", s.mastery[l.ID], barWidth).View() + "\n")
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
