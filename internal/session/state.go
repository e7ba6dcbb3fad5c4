// Package session runs a learner through a lesson. Flow is the six-step
// adaptive lesson; Practice is the shorter topic practice flow.
package session

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/ailearn/internal/lessons"
	"github.com/abhisek/ailearn/internal/pacing"
	"github.com/abhisek/ailearn/internal/progress"
	"github.com/abhisek/ailearn/internal/store"
	"github.com/abhisek/ailearn/internal/tutor"
)

var (
	ErrEmptyAnswer    = errors.New("answer is empty")
	ErrAnswerTooShort = errors.New("answer is too short")
	ErrWrongStep      = errors.New("not available at this step")
	ErrNoExercise     = errors.New("lesson has no exercise")

	// ErrLessonNotFound is lessons.ErrLessonNotFound.
	ErrLessonNotFound = lessons.ErrLessonNotFound
)

// Step is a stage of the adaptive lesson.
type Step int

const (
	StepDiagnosis Step = iota + 1
	StepContent
	StepPractice
	StepComprehension
	StepReflection
	StepResult
	StepDone
)

var stepLabels = map[Step]string{
	StepDiagnosis:     "Diagnóstico",
	StepContent:       "Contenido IA",
	StepPractice:      "Práctica",
	StepComprehension: "Comprensión",
	StepReflection:    "Reflexión",
	StepResult:        "Resultado",
	StepDone:          "Resultado",
}

// Label is the step name shown in the progress sidebar.
func (s Step) Label() string {
	return stepLabels[s]
}

// Steps returns the visible steps in order.
func Steps() []Step {
	return []Step{StepDiagnosis, StepContent, StepPractice, StepComprehension, StepReflection, StepResult}
}

// Deps are the services a lesson run reads and writes. Progress is
// required; the rest default to the built-in catalog, a random tutor,
// an instant pacer and no event log.
type Deps struct {
	Progress *progress.Service
	Catalog  *lessons.Catalog
	Tutor    *tutor.Tutor
	Pacer    *pacing.Pacer
	Events   store.EventRepo
	Logger   *zap.Logger

	// Rand draws the completion mastery. Nil uses the process generator.
	Rand tutor.Source
	Now  func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Catalog == nil {
		d.Catalog = lessons.Default()
	}
	if d.Tutor == nil {
		d.Tutor = tutor.New(d.Rand)
	}
	if d.Pacer == nil {
		d.Pacer = pacing.Instant()
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Rand == nil {
		d.Rand = tutor.NewSeededSource(uint64(time.Now().UnixNano()))
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// recorder writes progress adaptations and the event log for one run.
type recorder struct {
	deps   Deps
	runID  string
	lesson lessons.CatalogLesson
}

// track stores an adaptation in the progress history and the event log.
func (r recorder) track(ctx context.Context, adaptationType, reason string) error {
	if err := r.deps.Progress.TrackAdaptation(ctx, adaptationType, reason); err != nil {
		return err
	}
	if r.deps.Events == nil {
		return nil
	}
	if err := r.deps.Events.AppendAdaptation(ctx, store.AdaptationEventData{Type: adaptationType, Reason: reason}); err != nil {
		r.deps.Logger.Warn("event log write failed", zap.String("type", adaptationType), zap.Error(err))
	}
	return nil
}

// event appends a lesson step to the event log. Failures are logged only;
// the log is advisory.
func (r recorder) event(ctx context.Context, action string, score int, detail string) {
	if r.deps.Events == nil {
		return
	}
	err := r.deps.Events.AppendLesson(ctx, store.LessonEventData{
		RunID:    r.runID,
		LessonID: r.lesson.ID,
		Topic:    r.lesson.Topic,
		Action:   action,
		Score:    score,
		Detail:   detail,
	})
	if err != nil {
		r.deps.Logger.Warn("event log write failed",
			zap.String("run_id", r.runID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
