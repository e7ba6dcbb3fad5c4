package screen

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/ailearn/internal/evaluation"
	"github.com/abhisek/ailearn/internal/lessons"
	"github.com/abhisek/ailearn/internal/pacing"
	"github.com/abhisek/ailearn/internal/progress"
	"github.com/abhisek/ailearn/internal/session"
	"github.com/abhisek/ailearn/internal/store"
	"github.com/abhisek/ailearn/internal/tutor"
)

// Services are shared by every screen. Progress is required; Events may
// be nil when no event log is configured.
type Services struct {
	Progress  *progress.Service
	Catalog   *lessons.Catalog
	Tutor     *tutor.Tutor
	Evaluator *evaluation.Evaluator
	Pacer     *pacing.Pacer
	Events    store.EventRepo
	Logger    *zap.Logger

	// Now is the clock lesson runs use. Nil means time.Now.
	Now func() time.Time
}

// WithDefaults fills the optional services.
func (s Services) WithDefaults() Services {
	if s.Catalog == nil {
		s.Catalog = lessons.Default()
	}
	if s.Tutor == nil {
		s.Tutor = tutor.New(nil)
	}
	if s.Evaluator == nil {
		s.Evaluator = evaluation.Default()
	}
	if s.Pacer == nil {
		s.Pacer = pacing.Instant()
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}
	return s
}

// SessionDeps adapts the services for a lesson run.
func (s Services) SessionDeps() session.Deps {
	return session.Deps{
		Progress: s.Progress,
		Catalog:  s.Catalog,
		Tutor:    s.Tutor,
		Pacer:    s.Pacer,
		Events:   s.Events,
		Logger:   s.Logger,
		Now:      s.Now,
	}
}
