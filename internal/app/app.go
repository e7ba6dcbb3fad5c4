package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ailearn/internal/router"
	"github.com/abhisek/ailearn/internal/screen"
	"github.com/abhisek/ailearn/internal/screens/dashboard"
	"github.com/abhisek/ailearn/internal/screens/onboarding"
	"github.com/abhisek/ailearn/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	svc    screen.Services
	router *router.Router
	width  int
	height int
}

// newAppModel starts on the onboarding wizard for new learners and on the
// dashboard otherwise.
func newAppModel(svc screen.Services) AppModel {
	svc = svc.WithDefaults()
	var initial screen.Screen
	if svc.Progress.Snapshot().HasCompletedOnboarding {
		initial = dashboard.New(svc)
	} else {
		initial = onboarding.New(svc, func() screen.Screen { return dashboard.New(svc) })
	}
	return AppModel{
		svc:    svc,
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the frame for the current window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	st := m.svc.Progress.Snapshot()
	header := layout.RenderHeader(active.Title(), layout.Stats{
		Points: st.TotalPoints,
		Streak: st.CurrentStreak,
	}, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := layout.ContentHeight(header, footer, m.height)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Salir"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Volver"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(svc screen.Services) error {
	if svc.Progress == nil {
		return fmt.Errorf("run app: progress service is required")
	}
	p := tea.NewProgram(newAppModel(svc))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run app: %w", err)
	}
	return nil
}

