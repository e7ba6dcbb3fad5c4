package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/abhisek/ailearn/internal/profile"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, backend Backend) *Service {
	t.Helper()
	svc, err := Open(t.Context(), backend, Options{Now: func() time.Time { return fixedNow }})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return svc
}

// flakyBackend fails every Save while failing is set.
type flakyBackend struct {
	MemoryBackend
	mu      sync.Mutex
	failing bool
}

func (f *flakyBackend) setFailing(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing = v
}

func (f *flakyBackend) Save(ctx context.Context, data []byte) error {
	f.mu.Lock()
	failing := f.failing
	f.mu.Unlock()
	if failing {
		return errors.New("disk full")
	}
	return f.MemoryBackend.Save(ctx, data)
}

func TestOpenEmptyBackend(t *testing.T) {
	svc := newTestService(t, &MemoryBackend{})
	got := svc.Snapshot()
	if diff := cmp.Diff(Initial(), got, cmp.AllowUnexported(History{})); diff != "" {
		t.Errorf("initial state mismatch (-want +got):\n%s", diff)
	}
	if svc.Dirty() {
		t.Error("fresh service is dirty")
	}
}

func TestCountersResetEachOther(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t, &MemoryBackend{})

	mustDo(t, svc.IncrementErrors(ctx))
	mustDo(t, svc.IncrementErrors(ctx))
	p := svc.Profile()
	if p.RecentErrors != 2 || p.RecentSuccesses != 0 {
		t.Fatalf("after two errors = %d/%d, want 2/0", p.RecentErrors, p.RecentSuccesses)
	}

	mustDo(t, svc.IncrementSuccesses(ctx))
	p = svc.Profile()
	if p.RecentErrors != 0 || p.RecentSuccesses != 1 {
		t.Errorf("after success = %d/%d, want 0/1", p.RecentErrors, p.RecentSuccesses)
	}

	mustDo(t, svc.IncrementErrors(ctx))
	p = svc.Profile()
	if p.RecentErrors != 1 || p.RecentSuccesses != 0 {
		t.Errorf("after error = %d/%d, want 1/0", p.RecentErrors, p.RecentSuccesses)
	}

	mustDo(t, svc.ResetCounters(ctx))
	p = svc.Profile()
	if p.RecentErrors != 0 || p.RecentSuccesses != 0 {
		t.Errorf("after reset = %d/%d, want 0/0", p.RecentErrors, p.RecentSuccesses)
	}
}

func TestUpdateMasteryKeepsMaximum(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t, &MemoryBackend{})

	steps := []struct {
		pct  int
		want int
	}{
		{70, 70},
		{50, 70},
		{90, 90},
		{90, 90},
		{0, 90},
	}
	for _, s := range steps {
		mustDo(t, svc.UpdateMastery(ctx, "py-variables-1", s.pct))
		if got := svc.Snapshot().Mastery("py-variables-1"); got != s.want {
			t.Errorf("after %d mastery = %d, want %d", s.pct, got, s.want)
		}
	}

	for _, bad := range []int{-1, 101} {
		if err := svc.UpdateMastery(ctx, "py-variables-1", bad); !errors.Is(err, ErrInvalidMastery) {
			t.Errorf("UpdateMastery(%d) error = %v, want ErrInvalidMastery", bad, err)
		}
	}
	if err := svc.UpdateMastery(ctx, "", 50); !errors.Is(err, ErrEmptyLessonID) {
		t.Errorf("UpdateMastery(empty id) error = %v", err)
	}
	if got := svc.Snapshot().Mastery("py-variables-1"); got != 90 {
		t.Errorf("rejected updates changed mastery to %d", got)
	}
}

func TestTrackAdaptationIsBounded(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t, &MemoryBackend{})
	for i := range 25 {
		mustDo(t, svc.TrackAdaptation(ctx, "simplify", fmt.Sprintf("r%d", i)))
	}

	st := svc.Snapshot()
	entries := st.AdaptationHistory.Entries()
	if len(entries) != HistoryCap {
		t.Fatalf("history len = %d, want %d", len(entries), HistoryCap)
	}
	for i, e := range entries {
		if want := fmt.Sprintf("r%d", i+5); e.Reason != want {
			t.Errorf("entry %d = %s, want %s", i, e.Reason, want)
		}
		if !e.Timestamp.Equal(fixedNow) {
			t.Errorf("entry %d timestamp = %v", i, e.Timestamp)
		}
	}
}

func TestCompleteLesson(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t, &MemoryBackend{})

	mustDo(t, svc.CompleteLesson(ctx, "py-variables-1"))
	mustDo(t, svc.CompleteLesson(ctx, "py-variables-1"))
	mustDo(t, svc.CompleteLesson(ctx, "py-functions-1"))

	st := svc.Snapshot()
	if diff := cmp.Diff([]string{"py-variables-1", "py-functions-1"}, st.CompletedLessons); diff != "" {
		t.Errorf("completed mismatch (-want +got):\n%s", diff)
	}
	if st.TotalPoints != 3*LessonPoints {
		t.Errorf("TotalPoints = %d, want %d", st.TotalPoints, 3*LessonPoints)
	}
	if err := svc.CompleteLesson(ctx, ""); !errors.Is(err, ErrEmptyLessonID) {
		t.Errorf("CompleteLesson(empty) error = %v", err)
	}
}

func TestPointsStreakAndAnalytics(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t, &MemoryBackend{})

	mustDo(t, svc.AddPoints(ctx, 50))
	mustDo(t, svc.IncrementStreak(ctx))
	mustDo(t, svc.IncrementStreak(ctx))
	mustDo(t, svc.AddHours(ctx, 0.25))
	mustDo(t, svc.AddReflection(ctx, "py-variables-1", "me costó el tipo float"))
	mustDo(t, svc.AddLessonHistory(ctx, 80, 4))
	if err := svc.AddPoints(ctx, -1); !errors.Is(err, ErrInvalidPoints) {
		t.Errorf("AddPoints(-1) error = %v", err)
	}

	st := svc.Snapshot()
	if st.TotalPoints != 50 || st.CurrentStreak != 2 || st.TotalHours != 0.25 {
		t.Errorf("points/streak/hours = %d/%d/%v", st.TotalPoints, st.CurrentStreak, st.TotalHours)
	}
	wantRefl := []Reflection{{Date: fixedNow, LessonID: "py-variables-1", Text: "me costó el tipo float"}}
	if diff := cmp.Diff(wantRefl, st.Reflections); diff != "" {
		t.Errorf("reflections mismatch (-want +got):\n%s", diff)
	}
	wantHist := []LessonRecord{{Date: fixedNow, Accuracy: 80, TimeSpent: 4}}
	if diff := cmp.Diff(wantHist, st.LessonHistory); diff != "" {
		t.Errorf("lesson history mismatch (-want +got):\n%s", diff)
	}
}

func TestSettersAndDuration(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t, &MemoryBackend{})

	mustDo(t, svc.SetLearningStyle(ctx, profile.StyleVisual))
	mustDo(t, svc.SetTechnicalLevel(ctx, profile.LevelBeginner))
	mustDo(t, svc.SetMentalState(ctx, profile.StateMotivated))
	mustDo(t, svc.SetGoal(ctx, "  conseguir trabajo  "))
	mustDo(t, svc.SetSelectedTopic(ctx, "excel"))
	mustDo(t, svc.SetTopicLevel(ctx, "excel", profile.LevelAdvanced))
	mustDo(t, svc.SetCognitiveLoad(ctx, profile.LoadLow))
	five, zero := 5, 0
	mustDo(t, svc.UpdateProfile(ctx, ProfileChanges{PreferredDuration: &five}))
	mustDo(t, svc.SetLastLessonDifficulty(ctx, "advanced"))

	if err := svc.UpdateProfile(ctx, ProfileChanges{PreferredDuration: &zero}); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("UpdateProfile(0 minutes) error = %v", err)
	}

	st := svc.Snapshot()
	want := profile.Profile{
		LearningStyle:     profile.StyleVisual,
		MentalState:       profile.StateMotivated,
		TechnicalLevel:    profile.LevelBeginner,
		PreferredDuration: 5,
		CognitiveLoad:     profile.LoadLow,
	}
	if diff := cmp.Diff(want, st.Profile()); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
	if st.Goal != "conseguir trabajo" || st.SelectedTopic != "excel" || st.TopicLevels["excel"] != profile.LevelAdvanced {
		t.Errorf("goal/topic/levels = %q/%q/%v", st.Goal, st.SelectedTopic, st.TopicLevels)
	}
	if st.LastLessonDifficulty != "advanced" {
		t.Errorf("LastLessonDifficulty = %q", st.LastLessonDifficulty)
	}
}

func TestResetOnboardingKeepsProgress(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t, &MemoryBackend{})

	mustDo(t, svc.SetLearningStyle(ctx, profile.StyleLogical))
	mustDo(t, svc.SetTechnicalLevel(ctx, profile.LevelAdvanced))
	mustDo(t, svc.SetMentalState(ctx, profile.StateTired))
	mustDo(t, svc.SetGoal(ctx, "aprender"))
	mustDo(t, svc.SetSelectedTopic(ctx, "linux"))
	mustDo(t, svc.SetTopicLevel(ctx, "linux", profile.LevelBeginner))
	mustDo(t, svc.CompleteOnboarding(ctx))
	mustDo(t, svc.CompleteLesson(ctx, "linux-intro-1"))
	mustDo(t, svc.UpdateMastery(ctx, "linux-intro-1", 75))
	mustDo(t, svc.IncrementErrors(ctx))

	mustDo(t, svc.ResetOnboarding(ctx))
	st := svc.Snapshot()

	if st.LearningStyle != profile.StyleUnset || st.TechnicalLevel != profile.LevelUnset {
		t.Errorf("style/level = %q/%q, want unset", st.LearningStyle, st.TechnicalLevel)
	}
	if st.MentalState != profile.StateNeutral || st.Goal != "" || st.SelectedTopic != DefaultTopic {
		t.Errorf("state/goal/topic = %q/%q/%q", st.MentalState, st.Goal, st.SelectedTopic)
	}
	if len(st.TopicLevels) != 0 || st.HasCompletedOnboarding {
		t.Errorf("topic levels %v, onboarding %v", st.TopicLevels, st.HasCompletedOnboarding)
	}
	if !st.HasCompleted("linux-intro-1") || st.TotalPoints != LessonPoints || st.Mastery("linux-intro-1") != 75 || st.RecentErrors != 1 {
		t.Errorf("progress lost: %+v", st)
	}

	mustDo(t, svc.Reset(ctx))
	if diff := cmp.Diff(Initial(), svc.Snapshot(), cmp.AllowUnexported(History{})); diff != "" {
		t.Errorf("Reset mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteThroughAndReopen(t *testing.T) {
	ctx := t.Context()
	backend := &MemoryBackend{}
	svc := newTestService(t, backend)

	mustDo(t, svc.SetLearningStyle(ctx, profile.StyleKinesthetic))
	mustDo(t, svc.CompleteLesson(ctx, "py-variables-1"))
	mustDo(t, svc.UpdateMastery(ctx, "py-variables-1", 88))
	mustDo(t, svc.TrackAdaptation(ctx, "alternative_explanation", "errores repetidos"))

	reopened := newTestService(t, backend)
	if diff := cmp.Diff(svc.Snapshot(), reopened.Snapshot(), cmp.AllowUnexported(History{})); diff != "" {
		t.Errorf("reopened state mismatch (-want +got):\n%s", diff)
	}
}

func TestFailedSaveStaysDirtyUntilFlush(t *testing.T) {
	ctx := t.Context()
	backend := &flakyBackend{}
	svc := newTestService(t, backend)

	backend.setFailing(true)
	if err := svc.AddPoints(ctx, 10); err == nil {
		t.Fatal("AddPoints succeeded with a failing backend")
	}
	if !svc.Dirty() {
		t.Fatal("service not dirty after failed save")
	}
	if got := svc.Snapshot().TotalPoints; got != 10 {
		t.Errorf("in-memory points = %d, want 10", got)
	}
	if err := svc.Flush(ctx); err == nil {
		t.Error("Flush succeeded with a failing backend")
	}

	backend.setFailing(false)
	mustDo(t, svc.Flush(ctx))
	if svc.Dirty() {
		t.Error("service dirty after successful flush")
	}

	reopened := newTestService(t, backend)
	if got := reopened.Snapshot().TotalPoints; got != 10 {
		t.Errorf("persisted points = %d, want 10", got)
	}
}

func TestConcurrentMutations(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t, &MemoryBackend{})

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := svc.AddPoints(ctx, 2); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if got := svc.Snapshot().TotalPoints; got != 100 {
		t.Errorf("TotalPoints = %d, want 100", got)
	}
}

func TestExportImport(t *testing.T) {
	ctx := t.Context()
	src := newTestService(t, &MemoryBackend{})
	mustDo(t, src.SetGoal(ctx, "exportar"))
	mustDo(t, src.UpdateMastery(ctx, "excel-intro-1", 64))

	data, err := src.Export()
	if err != nil {
		t.Fatal(err)
	}

	dst := newTestService(t, &MemoryBackend{})
	mustDo(t, dst.Import(ctx, data))
	if diff := cmp.Diff(src.Snapshot(), dst.Snapshot(), cmp.AllowUnexported(History{})); diff != "" {
		t.Errorf("imported state mismatch (-want +got):\n%s", diff)
	}

	if err := dst.Import(ctx, []byte(`{"schemaVersion": 1, "mentalState": "sleepy"}`)); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Import(invalid) error = %v, want ErrInvalidState", err)
	}
	if got := dst.Snapshot().Goal; got != "exportar" {
		t.Errorf("failed import changed goal to %q", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t, &MemoryBackend{})
	mustDo(t, svc.CompleteLesson(ctx, "a"))

	snap := svc.Snapshot()
	snap.CompletedLessons[0] = "mutated"
	snap.LessonMastery["x"] = 100

	again := svc.Snapshot()
	if again.CompletedLessons[0] != "a" || again.Mastery("x") != 0 {
		t.Error("mutating a snapshot leaked into the service")
	}
}

func mustDo(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// countingBackend counts calls to Save.
type countingBackend struct {
	MemoryBackend
	saves int
}

func (c *countingBackend) Save(ctx context.Context, data []byte) error {
	c.saves++
	return c.MemoryBackend.Save(ctx, data)
}

func TestUpdateProfileSavesOnce(t *testing.T) {
	ctx := t.Context()
	backend := &countingBackend{}
	svc := newTestService(t, backend)

	style := profile.StyleVisual
	level := profile.LevelIntermediate
	state := profile.StateMotivated
	goal := "  Automatizar informes "
	minutes := 25
	err := svc.UpdateProfile(ctx, ProfileChanges{
		LearningStyle:     &style,
		TechnicalLevel:    &level,
		MentalState:       &state,
		Goal:              &goal,
		PreferredDuration: &minutes,
	})
	mustDo(t, err)
	if backend.saves != 1 {
		t.Errorf("saves = %d, want 1", backend.saves)
	}

	st := newTestService(t, backend).Snapshot()
	if st.LearningStyle != style || st.TechnicalLevel != level || st.MentalState != state ||
		st.Goal != "Automatizar informes" || st.PreferredDuration != minutes {
		t.Errorf("persisted state = %+v", st)
	}

	zero := 0
	other := profile.StyleLogical
	err = svc.UpdateProfile(ctx, ProfileChanges{LearningStyle: &other, PreferredDuration: &zero})
	if !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("UpdateProfile(0 minutes) = %v, want ErrInvalidDuration", err)
	}
	if got := svc.Profile().LearningStyle; got != style {
		t.Errorf("a rejected change applied the style: %s", got)
	}
	if backend.saves != 1 {
		t.Errorf("a rejected change saved: saves = %d", backend.saves)
	}
}

func TestAverageLessonMinutes(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t, &MemoryBackend{})
	if _, ok := svc.Snapshot().AverageLessonMinutes(); ok {
		t.Error("average reported without history")
	}
	mustDo(t, svc.AddLessonHistory(ctx, 70, 2))
	mustDo(t, svc.AddLessonHistory(ctx, 90, 7))
	avg, ok := svc.Snapshot().AverageLessonMinutes()
	if !ok || avg != 4.5 {
		t.Errorf("average = %v, %v; want 4.5", avg, ok)
	}
}
