package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ailearn/internal/progress"
	"github.com/abhisek/ailearn/internal/router"
	"github.com/abhisek/ailearn/internal/screen"
	"github.com/abhisek/ailearn/internal/screens/dashboard"
	"github.com/abhisek/ailearn/internal/screens/onboarding"
)

func newService(t *testing.T, onboarded bool) *progress.Service {
	t.Helper()
	svc, err := progress.Open(t.Context(), &progress.MemoryBackend{}, progress.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if onboarded {
		if err := svc.CompleteOnboarding(t.Context()); err != nil {
			t.Fatal(err)
		}
	}
	return svc
}

func TestInitialScreen(t *testing.T) {
	m := newAppModel(screen.Services{Progress: newService(t, false)})
	if _, ok := m.router.Active().(*onboarding.OnboardingScreen); !ok {
		t.Errorf("new learner starts on %T", m.router.Active())
	}

	m = newAppModel(screen.Services{Progress: newService(t, true)})
	if _, ok := m.router.Active().(*dashboard.DashboardScreen); !ok {
		t.Errorf("returning learner starts on %T", m.router.Active())
	}
}

func TestHeaderShowsStats(t *testing.T) {
	svc := newService(t, true)
	if err := svc.AddPoints(t.Context(), 40); err != nil {
		t.Fatal(err)
	}
	model, _ := newAppModel(screen.Services{Progress: svc}).Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	out := model.(AppModel).render()
	if !strings.Contains(out, "40 pts") {
		t.Error("header should show points")
	}
	if !strings.Contains(out, "Panel") {
		t.Error("header should show the screen title")
	}
}

func TestEscape(t *testing.T) {
	m := newAppModel(screen.Services{Progress: newService(t, true)})
	esc := tea.KeyPressMsg{Code: tea.KeyEscape}

	if _, cmd := m.Update(esc); cmd != nil {
		t.Error("esc on the root screen should do nothing")
	}

	m.router.Push(dashboard.NewLessonList(m.svc))
	_, cmd := m.Update(esc)
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop a pushed screen")
	}

	m = newAppModel(screen.Services{Progress: newService(t, false)})
	m.router.Push(onboarding.New(m.svc, nil))
	_, cmd = m.Update(esc)
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Error("screens handling esc themselves must not be popped")
		}
	}
}
