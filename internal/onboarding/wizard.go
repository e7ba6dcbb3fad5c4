// Package onboarding collects the learner profile: topic, learning style,
// technical level, mental state and goal, in that order.
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/ailearn/internal/lessons"
	"github.com/abhisek/ailearn/internal/placement"
	"github.com/abhisek/ailearn/internal/profile"
	"github.com/abhisek/ailearn/internal/progress"
)

var (
	ErrUnknownTopic = errors.New("unknown topic")
	ErrEmptyGoal    = errors.New("goal is empty")
	ErrWrongStep    = errors.New("not available at this step")
	ErrNotDone      = errors.New("onboarding not finished")
)

// Step is a page of the wizard.
type Step int

const (
	StepTopic Step = iota
	StepStyle
	StepLevel
	StepState
	StepGoal
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepTopic:
		return "topic"
	case StepStyle:
		return "style"
	case StepLevel:
		return "level"
	case StepState:
		return "state"
	case StepGoal:
		return "goal"
	default:
		return "done"
	}
}

// Total is the number of answer pages.
const Total = int(StepDone)

// Answers are the values collected so far.
type Answers struct {
	Topic string                 `json:"topic"`
	Style profile.LearningStyle  `json:"learningStyle"`
	Level profile.TechnicalLevel `json:"technicalLevel"`
	State profile.MentalState    `json:"mentalState"`
	Goal  string                 `json:"goal"`
}

// Wizard walks the onboarding pages. Each setter validates its answer and
// moves to the next page.
type Wizard struct {
	catalog *lessons.Catalog
	step    Step
	answers Answers
	quiz    *placement.Quiz
}

// New starts a wizard over the topics of catalog.
func New(catalog *lessons.Catalog) *Wizard {
	if catalog == nil {
		catalog = lessons.Default()
	}
	return &Wizard{catalog: catalog, answers: Answers{State: profile.StateNeutral}}
}

func (w *Wizard) Step() Step { return w.step }
func (w *Wizard) Answers() Answers { return w.answers }
func (w *Wizard) Done() bool { return w.step == StepDone }

// TopicName is the display name of the chosen topic.
func (w *Wizard) TopicName() string {
	if w.answers.Topic == "" {
		return "este tema"
	}
	return w.catalog.TopicName(w.answers.Topic)
}

// Back returns to the previous page. Answers already given are kept, but
// landing on the level page or earlier discards the placement quiz.
func (w *Wizard) Back() {
	if w.step > StepTopic {
		w.step--
	}
	if w.step <= StepLevel {
		w.quiz = nil
	}
}

func (w *Wizard) expect(step Step) error {
	if w.step != step {
		return fmt.Errorf("%w: at %s, need %s", ErrWrongStep, w.step, step)
	}
	return nil
}

// SetTopic picks the topic to learn.
func (w *Wizard) SetTopic(id string) error {
	if err := w.expect(StepTopic); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if _, ok := w.catalog.Topic(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTopic, id)
	}
	w.answers.Topic = id
	w.quiz = nil
	w.step = StepStyle
	return nil
}

// SetStyle picks the learning style. The unset style is rejected.
func (w *Wizard) SetStyle(style profile.LearningStyle) error {
	if err := w.expect(StepStyle); err != nil {
		return err
	}
	if style == profile.StyleUnset {
		return fmt.Errorf("%w: choose one", profile.ErrInvalidStyle)
	}
	if _, err := profile.ParseLearningStyle(string(style)); err != nil {
		return err
	}
	w.answers.Style = style
	w.step = StepLevel
	return nil
}

// Quiz returns the placement quiz for the chosen topic, creating it on
// first use.
func (w *Wizard) Quiz() *placement.Quiz {
	if w.quiz == nil {
		w.quiz = placement.NewQuiz(w.answers.Topic, w.TopicName())
	}
	return w.quiz
}

// SetLevel sets the technical level directly.
func (w *Wizard) SetLevel(level profile.TechnicalLevel) error {
	if err := w.expect(StepLevel); err != nil {
		return err
	}
	if level == profile.LevelUnset {
		return fmt.Errorf("%w: choose one", profile.ErrInvalidLevel)
	}
	if _, err := profile.ParseTechnicalLevel(string(level)); err != nil {
		return err
	}
	w.answers.Level = level
	w.step = StepState
	return nil
}

// FinishQuiz sets the level from the completed placement quiz.
func (w *Wizard) FinishQuiz() error {
	level, err := w.Quiz().Result()
	if err != nil {
		return err
	}
	return w.SetLevel(level)
}

// SkipLevel assigns placement.SkippedLevel.
func (w *Wizard) SkipLevel() error {
	return w.SetLevel(placement.SkippedLevel)
}

// SetState records how the learner feels today.
func (w *Wizard) SetState(state profile.MentalState) error {
	if err := w.expect(StepState); err != nil {
		return err
	}
	if _, err := profile.ParseMentalState(string(state)); err != nil {
		return err
	}
	w.answers.State = state
	w.step = StepGoal
	return nil
}

// SetGoal records the learner's goal in their own words.
func (w *Wizard) SetGoal(goal string) error {
	if err := w.expect(StepGoal); err != nil {
		return err
	}
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return ErrEmptyGoal
	}
	w.answers.Goal = goal
	w.step = StepDone
	return nil
}

// GoalSuggestions are ready-made goals for the chosen topic.
func (w *Wizard) GoalSuggestions() []string {
	name := w.TopicName()
	return []string{
		fmt.Sprintf("Quiero aprender %s desde cero", name),
		fmt.Sprintf("Necesito %s para mi trabajo", name),
		fmt.Sprintf("Busco mejorar mis habilidades en %s", name),
	}
}

// Save writes the answers to the progress store and marks onboarding
// completed.
func (w *Wizard) Save(ctx context.Context, svc *progress.Service) error {
	if !w.Done() {
		return ErrNotDone
	}
	a := w.answers
	steps := []func() error{
		func() error { return svc.SetSelectedTopic(ctx, a.Topic) },
		func() error { return svc.SetLearningStyle(ctx, a.Style) },
		func() error { return svc.SetTechnicalLevel(ctx, a.Level) },
		func() error { return svc.SetTopicLevel(ctx, a.Topic, a.Level) },
		func() error { return svc.SetMentalState(ctx, a.State) },
		func() error { return svc.SetGoal(ctx, a.Goal) },
		func() error { return svc.CompleteOnboarding(ctx) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("save onboarding: %w", err)
		}
	}
	return nil
}
