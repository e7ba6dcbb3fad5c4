package lessons

import (
	"strings"

	"github.com/abhisek/ailearn/internal/adaptive"
	"github.com/abhisek/ailearn/internal/profile"
)

// sectionSeparator joins the sections of a formatted lesson.
const sectionSeparator = "\n\n---\n\n"

// Lesson is a generated micro-lesson. It is advisory text only; callers
// persist whatever the learner does with it.
type Lesson struct {
	Topic         string         `json:"topic"`
	Concept       string         `json:"concept"`
	Shape         adaptive.Shape `json:"shape"`
	Simplified    bool           `json:"simplified"`
	Alternative   bool           `json:"alternative"`
	Objective     string         `json:"objective"`
	Content       string         `json:"content"`
	Practice      string         `json:"practice"`
	Comprehension string         `json:"comprehension"`
	Metacognition string         `json:"metacognition"`
	NextStep      string         `json:"nextStep"`
}

// Sections returns the lesson parts in presentation order.
func (l Lesson) Sections() []string {
	return []string{l.Objective, l.Content, l.Practice, l.Comprehension, l.Metacognition, l.NextStep}
}

// Format joins every section into one document.
func Format(l Lesson) string {
	return strings.Join(l.Sections(), sectionSeparator)
}

// AlternativeExplanation returns the analogy block shown when a learner
// keeps failing, without the leading separator.
func AlternativeExplanation(concept string) string {
	return strings.TrimPrefix(alternativeExplanation(concept), sectionSeparator)
}

// Generate composes a micro-lesson for concept within topic, shaped for p.
//
// Content follows the learning style. High load or tiredness replaces it
// wholesale with the simple variant. More than two recent errors append an
// alternative explanation regardless of style.
func Generate(topic, concept string, p profile.Profile) Lesson {
	state := p.MentalState.Effective()

	l := Lesson{
		Topic:     topic,
		Concept:   concept,
		Shape:     adaptive.ShapeFor(p.LearningStyle),
		Objective: objectiveFor(state, topic, concept),
	}

	switch {
	case p.CognitiveLoad == profile.LoadHigh || state == profile.StateTired:
		l.Content = simpleBody(concept)
		l.Simplified = true
	default:
		l.Content = styledBody(l.Shape, topic, concept)
		if state == profile.StateMotivated {
			l.Content += "\n\n" + motivatedTips[string(l.Shape)]
		}
	}

	if p.RecentErrors > 2 {
		l.Content += alternativeExplanation(concept)
		l.Alternative = true
	}

	l.Practice = practiceFor(state, topic, concept)
	l.Comprehension = comprehensionFor(state, concept)
	l.Metacognition = metacognitionFor(state, concept)
	l.NextStep = nextStepFor(p, state, topic, concept)

	return l
}

func styledBody(shape adaptive.Shape, topic, concept string) string {
	switch shape {
	case adaptive.ShapeDiagram:
		return diagramBody(concept)
	case adaptive.ShapeCode:
		return codeBody(concept)
	case adaptive.ShapeComparison:
		return comparisonBody(topic, concept)
	default:
		return textBody(topic, concept)
	}
}

func nextStepFor(p profile.Profile, state profile.MentalState, topic, concept string) string {
	switch {
	case p.RecentSuccesses > p.RecentErrors && state != profile.StateTired:
		return advanceStep(topic)
	case p.RecentErrors > 2:
		return reviewStep(concept)
	default:
		return practiceMoreStep(topic, concept)
	}
}
