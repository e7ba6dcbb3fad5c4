package progress

import (
	"maps"
	"slices"
	"time"

	"github.com/abhisek/ailearn/internal/profile"
)

// SchemaVersion is the version written by Encode.
const SchemaVersion = 1

const (
	DefaultTopic      = "python"
	DefaultDifficulty = "normal"

	// LessonPoints is awarded for each completed lesson.
	LessonPoints = 10
)

// Reflection is a learner's closing note on a lesson.
type Reflection struct {
	Date     time.Time `json:"date"`
	LessonID string    `json:"lessonId"`
	Text     string    `json:"text"`
}

// LessonRecord is one finished lesson in the analytics history.
type LessonRecord struct {
	Date      time.Time `json:"date"`
	Accuracy  float64   `json:"accuracy"`
	TimeSpent float64   `json:"timeSpent"`
}

// State is the whole persisted learner record.
type State struct {
	SchemaVersion int `json:"schemaVersion"`

	// Onboarding
	LearningStyle  profile.LearningStyle  `json:"learningStyle"`
	TechnicalLevel profile.TechnicalLevel `json:"technicalLevel"`
	MentalState    profile.MentalState    `json:"mentalState"`
	Goal           string                 `json:"goal"`

	SelectedTopic string                            `json:"selectedTopic"`
	TopicLevels   map[string]profile.TechnicalLevel `json:"topicLevels"`

	// Progress
	CompletedLessons       []string `json:"completedLessons"`
	CurrentStreak          int      `json:"currentStreak"`
	TotalPoints            int      `json:"totalPoints"`
	HasCompletedOnboarding bool     `json:"hasCompletedOnboarding"`

	// Analytics
	TotalHours    float64        `json:"totalHours"`
	Reflections   []Reflection   `json:"reflections"`
	LessonHistory []LessonRecord `json:"lessonHistory"`

	// Adaptive
	CognitiveLoad        profile.CognitiveLoad `json:"cognitiveLoad"`
	RecentErrors         int                   `json:"recentErrors"`
	RecentSuccesses      int                   `json:"recentSuccesses"`
	PreferredDuration    int                   `json:"preferredDuration"`
	LastLessonDifficulty string                `json:"lastLessonDifficulty"`
	AdaptationHistory    History               `json:"adaptationHistory"`

	LessonMastery map[string]int `json:"lessonMastery"`
}

// Initial returns the state of a learner who has never used the app.
func Initial() State {
	return State{
		SchemaVersion:        SchemaVersion,
		MentalState:          profile.StateNeutral,
		SelectedTopic:        DefaultTopic,
		TopicLevels:          map[string]profile.TechnicalLevel{},
		CompletedLessons:     []string{},
		Reflections:          []Reflection{},
		LessonHistory:        []LessonRecord{},
		CognitiveLoad:        profile.LoadMedium,
		PreferredDuration:    profile.DefaultPreferredDuration,
		LastLessonDifficulty: DefaultDifficulty,
		LessonMastery:        map[string]int{},
	}
}

// Profile is the adaptive view of the state.
func (s State) Profile() profile.Profile {
	return profile.Profile{
		LearningStyle:     s.LearningStyle,
		MentalState:       s.MentalState,
		TechnicalLevel:    s.TechnicalLevel,
		RecentErrors:      s.RecentErrors,
		RecentSuccesses:   s.RecentSuccesses,
		PreferredDuration: s.PreferredDuration,
		CognitiveLoad:     s.CognitiveLoad,
	}
}

// HasCompleted reports whether lessonID is in the completion list.
func (s State) HasCompleted(lessonID string) bool {
	return slices.Contains(s.CompletedLessons, lessonID)
}

// Mastery returns the lesson's mastery percentage, 0 if never recorded.
func (s State) Mastery(lessonID string) int {
	return s.LessonMastery[lessonID]
}

// AverageLessonMinutes is the mean time spent per recorded lesson. ok is
// false when no lesson has been recorded.
func (s State) AverageLessonMinutes() (avg float64, ok bool) {
	if len(s.LessonHistory) == 0 {
		return 0, false
	}
	var total float64
	for _, r := range s.LessonHistory {
		total += r.TimeSpent
	}
	return total / float64(len(s.LessonHistory)), true
}

// Clone returns a copy sharing no maps or slices with s.
func (s State) Clone() State {
	c := s
	c.TopicLevels = maps.Clone(s.TopicLevels)
	c.CompletedLessons = slices.Clone(s.CompletedLessons)
	c.Reflections = slices.Clone(s.Reflections)
	c.LessonHistory = slices.Clone(s.LessonHistory)
	c.LessonMastery = maps.Clone(s.LessonMastery)
	c.fillEmpty()
	return c
}

// fillEmpty replaces nil collections so the encoded blob never holds null
// where a list or object is expected.
func (s *State) fillEmpty() {
	if s.TopicLevels == nil {
		s.TopicLevels = map[string]profile.TechnicalLevel{}
	}
	if s.CompletedLessons == nil {
		s.CompletedLessons = []string{}
	}
	if s.Reflections == nil {
		s.Reflections = []Reflection{}
	}
	if s.LessonHistory == nil {
		s.LessonHistory = []LessonRecord{}
	}
	if s.LessonMastery == nil {
		s.LessonMastery = map[string]int{}
	}
}
