package tutor

import (
	"fmt"

	"github.com/abhisek/ailearn/internal/profile"
)

// FinalFeedback is the structured summary shown after a lesson.
type FinalFeedback struct {
	Performance       Performance `json:"performance"`
	MainMessage       string      `json:"mainMessage"`
	Strengths         []string    `json:"strengths"`
	AreasToImprove    []string    `json:"areasToImprove"`
	NextSteps         string      `json:"nextSteps"`
	MotivationalQuote string      `json:"motivationalQuote"`
}

// FinalInput is what DetailedFinalFeedback needs to know about a lesson.
type FinalInput struct {
	Topic         string
	Score         int
	LearningStyle profile.LearningStyle
}

const strengthsShown = 3

// DetailedFinalFeedback builds the end-of-lesson summary. Strengths and
// areas are drawn without replacement from the performance bucket.
func (t *Tutor) DetailedFinalFeedback(in FinalInput) FinalFeedback {
	perf := PerformanceFor(in.Score)

	areas := 2
	if perf == PerformanceExcellent {
		areas = 1
	}

	return FinalFeedback{
		Performance:       perf,
		MainMessage:       fmt.Sprintf(t.pick(mainMessages[perf]), in.Topic),
		Strengths:         t.sample(strengthPool[perf], strengthsShown),
		AreasToImprove:    t.sample(improvementPool[perf], areas),
		NextSteps:         NextStepsFor(in.LearningStyle),
		MotivationalQuote: t.pick(motivationalQuotes),
	}
}

// NextStepsFor maps a learning style to its study suggestion. Verbal
// learners get the auditory text and logical learners the reading text.
func NextStepsFor(style profile.LearningStyle) string {
	switch style {
	case profile.StyleVerbal:
		return nextStepsAuditory
	case profile.StyleKinesthetic:
		return nextStepsKinesthetic
	case profile.StyleLogical:
		return nextStepsReading
	default:
		return nextStepsVisual
	}
}

// sample shuffles a copy of pool and returns its first n entries.
func (t *Tutor) sample(pool []string, n int) []string {
	out := append([]string(nil), pool...)
	for i := len(out) - 1; i > 0; i-- {
		j := t.src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	if n > len(out) {
		n = len(out)
	}
	return out[:n]
}
