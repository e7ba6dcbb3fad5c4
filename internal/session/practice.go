package session

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/ailearn/internal/adaptive"
	"github.com/abhisek/ailearn/internal/lessons"
	"github.com/abhisek/ailearn/internal/store"
)

const (
	// PracticePoints is awarded on top of the lesson points when a topic
	// practice run finishes.
	PracticePoints = 50

	// simplifyAfterAttempts failed exercise attempts switch the lesson to
	// the simple difficulty.
	simplifyAfterAttempts = 2
)

// Practice is one run of the topic practice flow: objective, material,
// hands-on exercise, keyword check, reflection and result.
type Practice struct {
	rec        recorder
	deps       Deps
	focus      lessons.Focus
	difficulty lessons.Difficulty

	attempts       int
	asked          time.Time
	exercisePassed bool
	checked        bool
	checkPassed    bool
	reflected      bool
	summary        *PracticeSummary
}

// StartPractice opens a topic practice run. The lesson must carry
// hand-written material with an exercise.
func StartPractice(deps Deps, lessonID string, focus lessons.Focus) (*Practice, error) {
	deps = deps.withDefaults()
	lesson, err := deps.Catalog.Lookup(lessonID)
	if err != nil {
		return nil, fmt.Errorf("start practice %q: %w", lessonID, err)
	}
	if lesson.Material == nil {
		return nil, fmt.Errorf("start practice %q: %w", lessonID, ErrNoExercise)
	}
	if focus == "" {
		focus = lessons.FocusMedium
	}
	state := deps.Progress.Profile().MentalState
	return &Practice{
		rec:        recorder{deps: deps, runID: uuid.NewString(), lesson: lesson},
		deps:       deps,
		focus:      focus,
		difficulty: lessons.DifficultyFor(focus, state),
		asked:      deps.Now(),
	}, nil
}

// StartExercise restarts the answer clock when the exercise is shown.
func (p *Practice) StartExercise() { p.asked = p.deps.Now() }

func (p *Practice) Lesson() lessons.CatalogLesson { return p.rec.lesson }
func (p *Practice) Difficulty() lessons.Difficulty { return p.difficulty }
func (p *Practice) Attempts() int { return p.attempts }
func (p *Practice) ExercisePassed() bool { return p.exercisePassed }
func (p *Practice) Reflected() bool { return p.reflected }

// Objective is the one-line goal for the current difficulty.
func (p *Practice) Objective() string {
	return lessons.Objective(p.rec.lesson, p.difficulty)
}

// Simplified reports whether the material should be shown in its
// simplified form.
func (p *Practice) Simplified() bool {
	return p.difficulty == lessons.DifficultySimple
}

// ExerciseOutcome is the verdict on one exercise attempt.
type ExerciseOutcome struct {
	Passed     bool
	Simplified bool
	Message    string

	// Pace reacts to how quickly the attempt came in.
	Pace adaptive.Adaptation
}

// VerifyExercise checks the exercise code for any of the exercise
// keywords. Every call counts as an attempt, including rejected ones. A
// slow wrong attempt offers the alternative explanation.
func (p *Practice) VerifyExercise(ctx context.Context, code string) (ExerciseOutcome, error) {
	if p.exercisePassed {
		return ExerciseOutcome{}, fmt.Errorf("%w: exercise already passed", ErrWrongStep)
	}
	p.attempts++

	if utf8.RuneCountInString(strings.TrimSpace(code)) < minPracticeLength {
		return ExerciseOutcome{Message: "Escribe más código para verificar"}, ErrAnswerTooShort
	}

	now := p.deps.Now()
	passed := lessons.MatchesExercise(p.rec.lesson, code)
	pace := adaptive.RealTime(adaptive.Response{Correct: passed, TimeToAnswer: now.Sub(p.asked)})
	p.asked = now

	if passed {
		p.exercisePassed = true
		p.rec.event(ctx, store.ActionPracticeSubmitted, 100, fmt.Sprintf("attempts=%d", p.attempts))
		return ExerciseOutcome{Passed: true, Message: "¡Ejercicio completado!", Pace: pace}, nil
	}

	out := ExerciseOutcome{Message: "Intenta de nuevo. Revisa el ejemplo.", Pace: pace}
	if pace.Action == adaptive.ActionOfferAlternative {
		if err := p.rec.track(ctx, store.ActionAlternativeExplanation, "Slow incorrect answer"); err != nil {
			return ExerciseOutcome{}, err
		}
	}
	if p.attempts >= simplifyAfterAttempts && p.difficulty != lessons.DifficultySimple {
		p.difficulty = lessons.DifficultySimple
		out.Simplified = true
		out.Message = "Simplificando la explicación..."
		if err := p.rec.track(ctx, "simplified", fmt.Sprintf("%d failed attempts", p.attempts)); err != nil {
			return ExerciseOutcome{}, err
		}
	}
	p.rec.event(ctx, store.ActionPracticeSubmitted, 0, fmt.Sprintf("attempts=%d", p.attempts))
	return out, nil
}

// CheckAnswer runs the quick keyword check after the exercise. Any
// attempt lets the learner move on; a miss suggests reviewing the
// material.
func (p *Practice) CheckAnswer(ctx context.Context, answer string) (bool, error) {
	if strings.TrimSpace(answer) == "" {
		return false, ErrEmptyAnswer
	}
	p.checked = true
	p.checkPassed = lessons.MatchesExercise(p.rec.lesson, answer)
	score := 0
	if p.checkPassed {
		score = 100
	}
	p.rec.event(ctx, store.ActionComprehensionSubmitted, score, "")
	return p.checkPassed, nil
}

// Reflect stores the closing reflection.
func (p *Practice) Reflect(ctx context.Context, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyAnswer
	}
	if err := p.deps.Progress.AddReflection(ctx, p.rec.lesson.ID, trimmed); err != nil {
		return err
	}
	p.reflected = true
	p.rec.event(ctx, store.ActionReflectionSubmitted, 0, "")
	return nil
}

// Finish marks the lesson completed, awards the practice points, bumps the
// streak and remembers the difficulty for next time.
func (p *Practice) Finish(ctx context.Context) (*PracticeSummary, error) {
	if p.summary != nil {
		return p.summary, nil
	}
	if !p.checked {
		return nil, fmt.Errorf("%w: check not answered", ErrWrongStep)
	}

	id := p.rec.lesson.ID
	before := p.deps.Progress.Snapshot().TotalPoints
	steps := []func() error{
		func() error { return p.deps.Progress.CompleteLesson(ctx, id) },
		func() error { return p.deps.Progress.AddPoints(ctx, PracticePoints) },
		func() error { return p.deps.Progress.IncrementStreak(ctx) },
		func() error { return p.deps.Progress.SetLastLessonDifficulty(ctx, string(p.difficulty)) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, fmt.Errorf("finish practice %q: %w", id, err)
		}
	}
	st := p.deps.Progress.Snapshot()

	p.summary = &PracticeSummary{
		LessonID:     id,
		Difficulty:   p.difficulty,
		Attempts:     p.attempts,
		CheckPassed:  p.checkPassed,
		PointsEarned: st.TotalPoints - before,
		Streak:       st.CurrentStreak,
	}
	p.rec.event(ctx, store.ActionCompleted, 0, string(p.difficulty))
	p.deps.Logger.Info("practice completed",
		zap.String("run_id", p.rec.runID),
		zap.String("lesson", id),
		zap.Int("attempts", p.attempts),
	)
	return p.summary, nil
}
