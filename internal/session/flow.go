package session

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/ailearn/internal/lessons"
	"github.com/abhisek/ailearn/internal/profile"
	"github.com/abhisek/ailearn/internal/store"
	"github.com/abhisek/ailearn/internal/tutor"
)

const (
	minPracticeLength      = 10
	onTopicPracticeLength  = 50
	minComprehensionLength = 5

	// alternativeAfterErrors is how many earlier errors make a wrong
	// practice answer show the alternative explanation.
	alternativeAfterErrors = 2

	minMastery    = 60
	masterySpread = 41
)

// Flow is one run of the six-step adaptive lesson. It is not safe for
// concurrent use.
type Flow struct {
	rec     recorder
	deps    Deps
	step    Step
	started time.Time

	feeling     profile.MentalState
	load        profile.CognitiveLoad
	generated   lessons.Lesson
	content     string
	alternative bool
	feedback    string
	result      *Result
}

// Start opens a run of lessonID at the diagnosis step.
func Start(deps Deps, lessonID string) (*Flow, error) {
	deps = deps.withDefaults()
	lesson, err := deps.Catalog.Lookup(lessonID)
	if err != nil {
		return nil, fmt.Errorf("start %q: %w", lessonID, err)
	}
	return &Flow{
		rec:     recorder{deps: deps, runID: uuid.NewString(), lesson: lesson},
		deps:    deps,
		step:    StepDiagnosis,
		started: deps.Now(),
		feeling: profile.StateNeutral,
	}, nil
}

func (f *Flow) Step() Step { return f.step }
func (f *Flow) Lesson() lessons.CatalogLesson { return f.rec.lesson }
func (f *Flow) RunID() string { return f.rec.runID }
func (f *Flow) Load() profile.CognitiveLoad { return f.load }
func (f *Flow) Generated() lessons.Lesson { return f.generated }
func (f *Flow) Content() string { return f.content }
func (f *Flow) ShowAlternative() bool { return f.alternative }
func (f *Flow) Feedback() string { return f.feedback }
func (f *Flow) Result() *Result { return f.result }

// Alternative is the analogy block offered after repeated errors.
func (f *Flow) Alternative() string {
	return lessons.AlternativeExplanation(f.rec.lesson.Title)
}

// profile is the stored profile seen through the feeling given at
// diagnosis.
func (f *Flow) profile() profile.Profile {
	p := f.deps.Progress.Profile()
	p.MentalState = f.feeling
	if f.load != "" {
		p.CognitiveLoad = f.load
	}
	return p
}

func (f *Flow) expect(step Step) error {
	if f.step != step {
		return fmt.Errorf("%w: at %s, need %s", ErrWrongStep, f.step.Label(), step.Label())
	}
	return nil
}

// Diagnose records how the learner feels, derives the cognitive load and
// generates the lesson content. The flow moves to StepContent.
func (f *Flow) Diagnose(ctx context.Context, feeling profile.MentalState) error {
	if err := f.expect(StepDiagnosis); err != nil {
		return err
	}
	if feeling == "" {
		return fmt.Errorf("diagnose: %w", ErrEmptyAnswer)
	}

	stored := f.deps.Progress.Profile()
	load := profile.DeriveCognitiveLoad(feeling, stored.RecentErrors)
	if err := f.deps.Progress.SetCognitiveLoad(ctx, load); err != nil {
		return fmt.Errorf("diagnose: %w", err)
	}
	f.feeling = feeling
	f.load = load

	if err := f.deps.Pacer.Generation(ctx); err != nil {
		return err
	}

	p := f.profile()
	if p.LearningStyle == profile.StyleUnset {
		p.LearningStyle = profile.StyleVerbal
	}
	if p.TechnicalLevel == profile.LevelUnset {
		p.TechnicalLevel = profile.LevelBeginner
	}

	lesson := f.rec.lesson
	f.generated = lessons.Generate(f.deps.Catalog.TopicName(lesson.Topic), lesson.Title, p)
	f.content = lessons.Format(f.generated)

	reason := fmt.Sprintf("Load: %s, Style: %s", load, stored.LearningStyle)
	if err := f.rec.track(ctx, store.ActionContentGenerated, reason); err != nil {
		return fmt.Errorf("diagnose: %w", err)
	}
	f.rec.event(ctx, store.ActionContentGenerated, 0, reason)

	f.deps.Logger.Debug("lesson content generated",
		zap.String("run_id", f.rec.runID),
		zap.String("lesson", lesson.ID),
		zap.String("load", string(load)),
		zap.String("shape", string(f.generated.Shape)),
	)
	f.step = StepContent
	return nil
}

// Continue leaves the content step once content exists.
func (f *Flow) Continue() error {
	if err := f.expect(StepContent); err != nil {
		return err
	}
	if f.content == "" {
		return fmt.Errorf("%w: content not generated", ErrWrongStep)
	}
	f.step = StepPractice
	return nil
}

// PracticeOutcome is the verdict on a practice answer.
type PracticeOutcome struct {
	Success bool
	Message string

	// Alternative is set when the alternative explanation was unlocked by
	// this answer.
	Alternative bool
	Feedback    string
}

// SubmitPractice verifies a practice answer.
//
// Answers shorter than ten characters count as an error and are rejected
// with ErrAnswerTooShort; the step does not advance. Answers that mention a
// word of the lesson title, or are longer than fifty characters, count as
// a success. Anything else is an error, and when the learner already had
// two or more errors the alternative explanation is shown.
func (f *Flow) SubmitPractice(ctx context.Context, answer string) (PracticeOutcome, error) {
	if err := f.expect(StepPractice); err != nil {
		return PracticeOutcome{}, err
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return PracticeOutcome{}, ErrEmptyAnswer
	}
	if utf8.RuneCountInString(trimmed) < minPracticeLength {
		if err := f.deps.Progress.IncrementErrors(ctx); err != nil {
			return PracticeOutcome{}, err
		}
		return PracticeOutcome{Message: "Por favor, escribe una respuesta más completa"}, ErrAnswerTooShort
	}

	before := f.profile()

	var out PracticeOutcome
	if lessons.MentionsTitle(f.rec.lesson, trimmed) || utf8.RuneCountInString(trimmed) > onTopicPracticeLength {
		if err := f.deps.Progress.IncrementSuccesses(ctx); err != nil {
			return PracticeOutcome{}, err
		}
		out.Success = true
		out.Message = "¡Excelente práctica!"
	} else {
		if err := f.deps.Progress.IncrementErrors(ctx); err != nil {
			return PracticeOutcome{}, err
		}
		out.Message = "Intenta relacionar tu respuesta con el tema"
		if before.RecentErrors >= alternativeAfterErrors && !f.alternative {
			f.alternative = true
			out.Alternative = true
			if err := f.rec.track(ctx, store.ActionAlternativeExplanation, "Multiple errors detected"); err != nil {
				return PracticeOutcome{}, err
			}
			f.rec.event(ctx, store.ActionAlternativeExplanation, 0, "")
		}
	}

	feedback, err := f.tutorFeedback(ctx, tutor.StepPractice, trimmed, before)
	if err != nil {
		return PracticeOutcome{}, err
	}
	out.Feedback = feedback

	score := 0
	if out.Success {
		score = 100
	}
	f.rec.event(ctx, store.ActionPracticeSubmitted, score, "")
	f.step = StepComprehension
	return out, nil
}

// SubmitComprehension accepts any answer of at least five characters and
// counts it as a success.
func (f *Flow) SubmitComprehension(ctx context.Context, answer string) (string, error) {
	if err := f.expect(StepComprehension); err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return "", ErrEmptyAnswer
	}
	if utf8.RuneCountInString(trimmed) < minComprehensionLength {
		return "", ErrAnswerTooShort
	}
	before := f.profile()
	if err := f.deps.Progress.IncrementSuccesses(ctx); err != nil {
		return "", err
	}

	feedback, err := f.tutorFeedback(ctx, tutor.StepComprehension, trimmed, before)
	if err != nil {
		return "", err
	}
	f.rec.event(ctx, store.ActionComprehensionSubmitted, 0, "")
	f.step = StepReflection
	return feedback, nil
}

// SubmitReflection stores the learner's reflection.
func (f *Flow) SubmitReflection(ctx context.Context, text string) (string, error) {
	if err := f.expect(StepReflection); err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyAnswer
	}
	if err := f.deps.Progress.AddReflection(ctx, f.rec.lesson.ID, trimmed); err != nil {
		return "", err
	}

	feedback, err := f.tutorFeedback(ctx, tutor.StepReflection, trimmed, f.profile())
	if err != nil {
		return "", err
	}
	f.rec.event(ctx, store.ActionReflectionSubmitted, 0, "")
	f.step = StepResult
	return feedback, nil
}

// Complete finishes the lesson: it draws a mastery score between 60 and
// 100, merges it, marks the lesson completed and records the time spent.
func (f *Flow) Complete(ctx context.Context) (*Result, error) {
	if err := f.expect(StepResult); err != nil {
		return nil, err
	}
	lesson := f.rec.lesson
	mastery := minMastery + f.deps.Rand.IntN(masterySpread)
	elapsed := f.deps.Now().Sub(f.started)
	minutes := int(elapsed / time.Minute)

	before := f.deps.Progress.Snapshot().TotalPoints
	steps := []func() error{
		func() error { return f.deps.Progress.UpdateMastery(ctx, lesson.ID, mastery) },
		func() error { return f.deps.Progress.CompleteLesson(ctx, lesson.ID) },
		func() error { return f.deps.Progress.AddLessonHistory(ctx, float64(mastery), float64(minutes)) },
		func() error { return f.deps.Progress.AddHours(ctx, elapsed.Hours()) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, fmt.Errorf("complete %q: %w", lesson.ID, err)
		}
	}
	st := f.deps.Progress.Snapshot()

	topic := f.generated.Concept
	if topic == "" {
		topic = "el tema"
	}
	perf := tutor.PerformanceFor(mastery)
	p := st.Profile()
	f.result = &Result{
		LessonID:     lesson.ID,
		Mastery:      mastery,
		Performance:  perf,
		PointsEarned: st.TotalPoints - before,
		Minutes:      minutes,
		Feedback: f.deps.Tutor.Feedback(tutor.Request{
			Step:        tutor.StepFinal,
			Profile:     p,
			Performance: perf,
		}),
		Detail: f.deps.Tutor.DetailedFinalFeedback(tutor.FinalInput{
			Topic:         topic,
			Score:         mastery,
			LearningStyle: p.LearningStyle,
		}),
	}
	if next, ok := f.deps.Catalog.Next(lesson.ID); ok {
		f.result.Next = &next
	}
	f.feedback = f.result.Feedback

	f.rec.event(ctx, store.ActionCompleted, mastery, string(perf))
	f.deps.Logger.Info("lesson completed",
		zap.String("run_id", f.rec.runID),
		zap.String("lesson", lesson.ID),
		zap.Int("mastery", mastery),
	)
	f.step = StepDone
	return f.result, nil
}

// tutorFeedback pauses and asks the tutor about an answer. p is the profile
// as it was when the answer was submitted, before the step's counters moved.
func (f *Flow) tutorFeedback(ctx context.Context, step tutor.Step, answer string, p profile.Profile) (string, error) {
	if err := f.deps.Pacer.Feedback(ctx); err != nil {
		return "", err
	}
	f.feedback = f.deps.Tutor.Feedback(tutor.Request{
		Step:    step,
		Answer:  answer,
		Profile: p,
	})
	return f.feedback, nil
}
