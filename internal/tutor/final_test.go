package tutor

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/abhisek/ailearn/internal/profile"
)

func TestDetailedFinalFeedback(t *testing.T) {
	tests := []struct {
		score int
		perf  Performance
		areas int
	}{
		{95, PerformanceExcellent, 1},
		{75, PerformanceGood, 2},
		{60, PerformanceInProgress, 2},
	}
	tut := New(NewSeededSource(3))
	for _, tt := range tests {
		for range 20 {
			got := tut.DetailedFinalFeedback(FinalInput{Topic: "Variables", Score: tt.score, LearningStyle: profile.StyleKinesthetic})

			if got.Performance != tt.perf {
				t.Fatalf("score %d: Performance = %q, want %q", tt.score, got.Performance, tt.perf)
			}
			if !strings.Contains(got.MainMessage, "\"Variables\"") {
				t.Errorf("MainMessage missing topic: %q", got.MainMessage)
			}
			var mains []string
			for _, m := range mainMessages[tt.perf] {
				mains = append(mains, fmt.Sprintf(m, "Variables"))
			}
			if !slices.Contains(mains, got.MainMessage) {
				t.Errorf("MainMessage %q not from the %q pool", got.MainMessage, tt.perf)
			}

			assertDistinctSubset(t, got.Strengths, strengthPool[tt.perf], 3)
			assertDistinctSubset(t, got.AreasToImprove, improvementPool[tt.perf], tt.areas)

			if got.NextSteps != nextStepsKinesthetic {
				t.Errorf("NextSteps = %q", got.NextSteps)
			}
			if !slices.Contains(motivationalQuotes, got.MotivationalQuote) {
				t.Errorf("MotivationalQuote %q not in pool", got.MotivationalQuote)
			}
		}
	}
}

func assertDistinctSubset(t *testing.T, got, pool []string, n int) {
	t.Helper()
	if len(got) != n {
		t.Fatalf("len = %d, want %d", len(got), n)
	}
	seen := map[string]bool{}
	for _, s := range got {
		if seen[s] {
			t.Errorf("duplicate entry %q", s)
		}
		seen[s] = true
		if !slices.Contains(pool, s) {
			t.Errorf("entry %q not in pool", s)
		}
	}
}

func TestDetailedFinalFeedbackLeavesPoolsIntact(t *testing.T) {
	before := append([]string(nil), strengthPool[PerformanceGood]...)
	tut := New(NewSeededSource(11))
	for range 10 {
		tut.DetailedFinalFeedback(FinalInput{Topic: "x", Score: 75})
	}
	if !slices.Equal(before, strengthPool[PerformanceGood]) {
		t.Error("sampling reordered the shared pool")
	}
}

func TestNextStepsFor(t *testing.T) {
	tests := []struct {
		style profile.LearningStyle
		want  string
	}{
		{profile.StyleVisual, nextStepsVisual},
		{profile.StyleVerbal, nextStepsAuditory},
		{profile.StyleKinesthetic, nextStepsKinesthetic},
		{profile.StyleLogical, nextStepsReading},
		{profile.StyleUnset, nextStepsVisual},
	}
	for _, tt := range tests {
		if got := NextStepsFor(tt.style); got != tt.want {
			t.Errorf("NextStepsFor(%q) = %q, want %q", tt.style, got, tt.want)
		}
	}
}
