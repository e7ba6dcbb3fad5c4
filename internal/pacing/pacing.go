// Package pacing holds the short artificial pauses shown while content is
// "generated" or an answer is "evaluated". Every pause is bound to a
// context so leaving a screen cancels it.
package pacing

import (
	"context"
	"time"
)

// Default pause lengths.
const (
	DefaultGeneration = 1500 * time.Millisecond
	DefaultFeedback   = 800 * time.Millisecond
	DefaultEvaluation = 2000 * time.Millisecond
)

// Wait blocks for d or until ctx is done, whichever comes first. A
// non-positive d returns immediately unless ctx is already done.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Delays configures a Pacer. Zero values disable the pause.
type Delays struct {
	Generation time.Duration `yaml:"generation"`
	Feedback   time.Duration `yaml:"feedback"`
	Evaluation time.Duration `yaml:"evaluation"`
}

// DefaultDelays returns the standard pauses.
func DefaultDelays() Delays {
	return Delays{
		Generation: DefaultGeneration,
		Feedback:   DefaultFeedback,
		Evaluation: DefaultEvaluation,
	}
}

// Pacer applies the configured pauses.
type Pacer struct {
	delays Delays
}

// New returns a Pacer with the given delays.
func New(d Delays) *Pacer {
	return &Pacer{delays: d}
}

// Instant returns a Pacer that never pauses.
func Instant() *Pacer {
	return &Pacer{}
}

func (p *Pacer) Generation(ctx context.Context) error {
	return Wait(ctx, p.delays.Generation)
}

func (p *Pacer) Feedback(ctx context.Context) error {
	return Wait(ctx, p.delays.Feedback)
}

func (p *Pacer) Evaluation(ctx context.Context) error {
	return Wait(ctx, p.delays.Evaluation)
}
