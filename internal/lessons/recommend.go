package lessons

import (
	"fmt"
	"strings"

	"github.com/abhisek/ailearn/internal/profile"
)

// maxRecommended is how many lessons the dashboard lists per topic.
const maxRecommended = 6

// Recommendation is what the dashboard shows for the selected topic.
type Recommendation struct {
	Lessons []CatalogLesson `json:"lessons"`
	Next    *CatalogLesson  `json:"next,omitempty"`
	Minutes int             `json:"minutes"`
}

// Recommend lists the first lessons of topic and picks the first one not yet
// completed as next, falling back to the first lesson.
func (c *Catalog) Recommend(topic string, completed []string, state profile.MentalState) Recommendation {
	all := c.ForTopic(topic)
	if len(all) > maxRecommended {
		all = all[:maxRecommended]
	}
	rec := Recommendation{Lessons: all, Minutes: DashboardMinutes(state)}
	if len(all) == 0 {
		return rec
	}

	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}
	next := all[0]
	for _, l := range all {
		if !done[l.ID] {
			next = l
			break
		}
	}
	rec.Next = &next
	return rec
}

// DashboardMinutes is the session length suggested on the dashboard.
func DashboardMinutes(state profile.MentalState) int {
	switch state.Effective() {
	case profile.StateTired:
		return 5
	case profile.StateNeutral:
		return 10
	default:
		return 15
	}
}

// Focus is the self-reported focus level in the topic practice flow.
type Focus string

const (
	FocusLow    Focus = "low"
	FocusMedium Focus = "medium"
	FocusHigh   Focus = "high"
)

// Difficulty of a topic practice lesson.
type Difficulty string

const (
	DifficultySimple   Difficulty = "simple"
	DifficultyNormal   Difficulty = "normal"
	DifficultyAdvanced Difficulty = "advanced"
)

// DifficultyFor combines focus and mood. Only the extremes move away from
// normal.
func DifficultyFor(focus Focus, state profile.MentalState) Difficulty {
	switch {
	case focus == FocusLow && state == profile.StateTired:
		return DifficultySimple
	case focus == FocusHigh && state == profile.StateMotivated:
		return DifficultyAdvanced
	default:
		return DifficultyNormal
	}
}

// Minutes is the time estimate announced for a difficulty.
func (d Difficulty) Minutes() int {
	switch d {
	case DifficultySimple:
		return 3
	case DifficultyAdvanced:
		return 5
	default:
		return 4
	}
}

// Objective is the one-line goal shown before a topic practice lesson.
func Objective(l CatalogLesson, d Difficulty) string {
	return fmt.Sprintf("Hoy aprenderás %s en menos de %d minutos.", l.Title, d.Minutes())
}

// MatchesExercise reports whether answer mentions any exercise keyword,
// ignoring case.
func MatchesExercise(l CatalogLesson, answer string) bool {
	if l.Material == nil {
		return false
	}
	lower := strings.ToLower(answer)
	for _, kw := range l.Material.Exercise.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// MentionsTitle reports whether answer contains a word of the lesson title.
func MentionsTitle(l CatalogLesson, answer string) bool {
	lower := strings.ToLower(answer)
	for _, w := range l.TitleWords() {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
