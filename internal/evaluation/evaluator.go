// Package evaluation scores written answers by keyword presence against a
// per-topic rubric. Scoring is deterministic.
package evaluation

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
)

// ErrEmptyAnswer is returned for blank answers.
var ErrEmptyAnswer = errors.New("answer is empty")

// ConceptResult is the grade for one concept.
type ConceptResult struct {
	Concept  string `json:"concept"`
	Score    int    `json:"score"`
	MaxScore int    `json:"maxScore"`
	Feedback string `json:"feedback"`
	Status   Status `json:"status"`
}

// Result is a graded answer.
type Result struct {
	Topic       string          `json:"topic"`
	Evaluations []ConceptResult `json:"evaluations"`

	// Score is the percentage of the available points earned, 0-100.
	Score int `json:"finalScore"`
}

// Evaluator grades answers with a set of rubrics.
type Evaluator struct {
	rubrics map[string]Rubric
}

// New builds an evaluator from the builtin rubrics plus extra. A rubric in
// extra replaces a builtin one for the same topic.
func New(extra ...Rubric) (*Evaluator, error) {
	e := &Evaluator{rubrics: make(map[string]Rubric)}
	for _, r := range BuiltinRubrics() {
		e.rubrics[r.Topic] = r
	}
	for _, r := range extra {
		normalize(&r)
		if err := r.Validate(); err != nil {
			return nil, err
		}
		e.rubrics[r.Topic] = r
	}
	return e, nil
}

var defaultEvaluator = sync.OnceValue(func() *Evaluator {
	e, err := New()
	if err != nil {
		panic(fmt.Sprintf("builtin rubrics: %v", err))
	}
	return e
})

// Default returns the evaluator with only builtin rubrics.
func Default() *Evaluator { return defaultEvaluator() }

// Evaluate grades answer with the default evaluator.
func Evaluate(topic, answer string) (Result, error) {
	return Default().Evaluate(topic, answer)
}

// Rubric returns the rubric used for topic, falling back to the generic one.
func (e *Evaluator) Rubric(topic string) Rubric {
	if r, ok := e.rubrics[strings.ToLower(topic)]; ok {
		return r
	}
	return e.rubrics[GenericTopic]
}

// Topics lists the topics with a dedicated rubric, sorted.
func (e *Evaluator) Topics() []string {
	var out []string
	for t := range e.rubrics {
		if t != GenericTopic {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return out
}

// Evaluate grades answer against the rubric for topic.
func (e *Evaluator) Evaluate(topic, answer string) (Result, error) {
	if strings.TrimSpace(answer) == "" {
		return Result{}, ErrEmptyAnswer
	}

	rubric := e.Rubric(topic)
	lower := strings.ToLower(answer)
	length := runeLen(answer)

	res := Result{Topic: rubric.Topic}
	var earned, available int
	for _, c := range rubric.Concepts {
		cr := c.grade(lower, length)
		res.Evaluations = append(res.Evaluations, cr)
		earned += cr.Score
		available += cr.MaxScore
	}
	if available > 0 {
		res.Score = int(math.Round(100 * float64(earned) / float64(available)))
	}
	return res, nil
}

// Question is the prompt shown before a written evaluation.
func (e *Evaluator) Question(topic, topicName string) (question, focus string) {
	if topicName == "" {
		topicName = topic
	}
	question = fmt.Sprintf("Explica los conceptos fundamentales que has aprendido sobre %s", topicName)
	focus = "Escribe una respuesta detallada. La evaluación revisará:" + e.Rubric(topic).Focus
	return question, focus
}
