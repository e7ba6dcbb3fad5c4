package session

import (
	"github.com/abhisek/ailearn/internal/lessons"
	"github.com/abhisek/ailearn/internal/tutor"
)

// Result is what the learner sees after completing an adaptive lesson.
type Result struct {
	LessonID     string              `json:"lessonId"`
	Mastery      int                 `json:"mastery"`
	Performance  tutor.Performance   `json:"performance"`
	PointsEarned int                 `json:"pointsEarned"`
	Minutes      int                 `json:"minutes"`
	Feedback     string              `json:"feedback"`
	Detail       tutor.FinalFeedback `json:"detail"`

	// Next is the following lesson of the same topic, if any.
	Next *lessons.CatalogLesson `json:"next,omitempty"`
}

// PracticeSummary is the result of a finished topic practice run.
type PracticeSummary struct {
	LessonID     string             `json:"lessonId"`
	Difficulty   lessons.Difficulty `json:"difficulty"`
	Attempts     int                `json:"attempts"`
	CheckPassed  bool               `json:"checkPassed"`
	PointsEarned int                `json:"pointsEarned"`
	Streak       int                `json:"streak"`
}
