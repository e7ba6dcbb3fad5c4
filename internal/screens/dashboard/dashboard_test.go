package dashboard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ailearn/internal/progress"
	"github.com/abhisek/ailearn/internal/router"
	"github.com/abhisek/ailearn/internal/screen"
	"github.com/abhisek/ailearn/internal/screens/lesson"
	"github.com/abhisek/ailearn/internal/screens/onboarding"
	"github.com/abhisek/ailearn/internal/screens/practice"
)

func newDashboard(t *testing.T) (*DashboardScreen, *progress.Service) {
	t.Helper()
	svc, err := progress.Open(t.Context(), &progress.MemoryBackend{}, progress.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.CompleteOnboarding(t.Context()); err != nil {
		t.Fatal(err)
	}
	return New(screen.Services{Progress: svc}), svc
}

func selectItem(d *DashboardScreen, label string) tea.Cmd {
	for i, item := range d.menu.Items {
		if item.Label == label {
			d.menu.Selected = i
			_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
			return cmd
		}
	}
	return nil
}

func TestDashboardRecommendsFirstLesson(t *testing.T) {
	d, _ := newDashboard(t)
	if d.rec.Next == nil || d.rec.Next.ID != "py-variables-1" {
		t.Fatalf("next = %+v", d.rec.Next)
	}
	view := d.View(120, 40)
	for _, want := range []string{"Variables en Python", "Recomendado", "0 puntos"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	cmd := selectItem(d, "Continuar aprendiendo")
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected a push")
	}
	if _, ok := msg.Screen.(*lesson.LessonScreen); !ok {
		t.Errorf("pushed %T", msg.Screen)
	}
}

func TestDashboardRefreshAfterLesson(t *testing.T) {
	d, svc := newDashboard(t)
	if err := svc.CompleteLesson(t.Context(), "py-variables-1"); err != nil {
		t.Fatal(err)
	}
	d.Refresh()
	if d.rec.Next.ID != "py-variables-2" {
		t.Errorf("next = %s, want py-variables-2", d.rec.Next.ID)
	}
	if !strings.Contains(d.View(120, 40), "10 puntos") {
		t.Error("points not refreshed")
	}

	cmd := selectItem(d, "Práctica guiada")
	msg := cmd().(router.PushScreenMsg)
	if _, ok := msg.Screen.(*practice.PracticeScreen); !ok {
		t.Errorf("pushed %T", msg.Screen)
	}
	if got := d.menu.Items[1].Detail; got != "Tipos de datos" {
		t.Errorf("practice lesson = %q, want the first uncompleted one", got)
	}
}

func TestDashboardCycleTopic(t *testing.T) {
	d, svc := newDashboard(t)
	d.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	if got := svc.Snapshot().SelectedTopic; got != "linux" {
		t.Errorf("topic = %q, want linux", got)
	}
	if d.rec.Next == nil || d.rec.Next.Topic != "linux" {
		t.Errorf("recommendation not updated: %+v", d.rec.Next)
	}
}

func TestDashboardResetProfile(t *testing.T) {
	d, svc := newDashboard(t)
	if err := svc.AddPoints(t.Context(), 30); err != nil {
		t.Fatal(err)
	}

	cmd := selectItem(d, "Reiniciar perfil")
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected replace with onboarding")
	}
	if _, ok := msg.Screen.(*onboarding.OnboardingScreen); !ok {
		t.Errorf("replaced with %T", msg.Screen)
	}
	st := svc.Snapshot()
	if st.HasCompletedOnboarding {
		t.Error("onboarding should be cleared")
	}
	if st.TotalPoints != 30 {
		t.Errorf("points = %d, progress should be kept", st.TotalPoints)
	}
}

func TestLessonList(t *testing.T) {
	d, svc := newDashboard(t)
	if err := svc.UpdateMastery(t.Context(), "py-variables-1", 80); err != nil {
		t.Fatal(err)
	}
	s := NewLessonList(d.svc)
	if !strings.Contains(s.View(120, 40), "80%") {
		t.Error("mastery bar missing")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	msg := cmd().(router.PushScreenMsg)
	if _, ok := msg.Screen.(*practice.PracticeScreen); !ok {
		t.Errorf("pushed %T", msg.Screen)
	}

	for range 3 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'p', Text: "p"}); cmd != nil {
		t.Error("lessons without material have no practice")
	}
}

func TestDashboardSuggestsLengthFromHistory(t *testing.T) {
	d, svc := newDashboard(t)
	if strings.Contains(d.View(120, 40), "Según tu ritmo") {
		t.Error("no pace hint without lesson history")
	}

	ctx := t.Context()
	for _, minutes := range []float64{3, 5} {
		if err := svc.AddLessonHistory(ctx, 80, minutes); err != nil {
			t.Fatal(err)
		}
	}
	d = New(screen.Services{Progress: svc})
	if !strings.Contains(d.View(120, 40), "Según tu ritmo, lecciones de 3 minutos") {
		t.Error("a 4 minute average should suggest 3 minute lessons")
	}
}
