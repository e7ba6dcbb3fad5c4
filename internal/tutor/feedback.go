// Package tutor picks canned tutor responses. Quality is judged only from
// answer length and the learner's current run of errors and successes.
package tutor

import (
	"math/rand/v2"
	"unicode/utf8"

	"github.com/abhisek/ailearn/internal/profile"
)

// Step is the lesson step the feedback is for.
type Step string

const (
	StepPractice      Step = "practice"
	StepComprehension Step = "comprehension"
	StepReflection    Step = "reflection"
	StepFinal         Step = "final"
)

// Tier is a response pool.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierNeedsWork Tier = "needsWork"
)

// Performance is the bucket a final score falls into.
type Performance string

const (
	PerformanceExcellent  Performance = "excelente"
	PerformanceGood       Performance = "bueno"
	PerformanceInProgress Performance = "en progreso"
)

// PerformanceFor buckets a 0-100 score.
func PerformanceFor(score int) Performance {
	switch {
	case score >= 85:
		return PerformanceExcellent
	case score >= 70:
		return PerformanceGood
	default:
		return PerformanceInProgress
	}
}

const (
	goodAnswerLength   = 50
	effortAnswerLength = 20
)

// Source picks indexes into response pools. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// NewSeededSource returns a reproducible source.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Tutor selects feedback. The zero value is not usable; use New.
type Tutor struct {
	src Source
}

// New creates a Tutor. A nil source uses the process-wide generator.
func New(src Source) *Tutor {
	if src == nil {
		src = globalSource{}
	}
	return &Tutor{src: src}
}

// Request describes the answer to give feedback on.
type Request struct {
	Step    Step
	Answer  string
	Profile profile.Profile

	// Performance is only read for StepFinal. Empty means it is derived
	// from the learner's current run.
	Performance Performance
}

// Classify returns the pool a request draws from.
func Classify(r Request) Tier {
	p := r.Profile
	if r.Step == StepFinal {
		perf := r.Performance
		if perf == "" {
			perf = PerformanceGood
			if p.RecentSuccesses > p.RecentErrors {
				perf = PerformanceExcellent
			}
		}
		switch perf {
		case PerformanceExcellent:
			return TierExcellent
		case PerformanceGood:
			return TierGood
		default:
			return TierNeedsWork
		}
	}

	length := utf8.RuneCountInString(r.Answer)
	switch {
	case length > goodAnswerLength && p.RecentSuccesses > p.RecentErrors:
		return TierExcellent
	case length > effortAnswerLength || p.RecentSuccesses >= p.RecentErrors:
		return TierGood
	default:
		return TierNeedsWork
	}
}

// Feedback returns one response from the classified pool followed by a
// mood suffix. Output is random unless the tutor has a seeded source.
func (t *Tutor) Feedback(r Request) string {
	pool := Pool(r)
	suffixes := Suffixes(r.Profile.MentalState)
	return t.pick(pool) + t.pick(suffixes)
}

// Pool returns every response Feedback may start with for r.
func Pool(r Request) []string {
	step := r.Step
	if _, ok := responses[step]; !ok {
		step = StepPractice
	}
	return responses[step][Classify(r)]
}

// Suffixes returns the mood suffixes for a mental state.
func Suffixes(state profile.MentalState) []string {
	return encouragement[state.Effective()]
}

func (t *Tutor) pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[t.src.IntN(len(pool))]
}
