package evaluation

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrInvalidRubric is returned when a rubric cannot be interpreted.
var ErrInvalidRubric = errors.New("invalid rubric")

// Status grades a single concept.
type Status string

const (
	StatusCorrect   Status = "correct"
	StatusPartial   Status = "partial"
	StatusIncorrect Status = "incorrect"
)

// DefaultMaxScore is the ceiling of a concept unless the rubric says otherwise.
const DefaultMaxScore = 10

// Rubric grades answers on one topic.
type Rubric struct {
	Topic string `yaml:"topic"`

	// Focus completes "La evaluación revisará:" in the question prompt.
	Focus    string    `yaml:"focus"`
	Concepts []Concept `yaml:"concepts"`
}

// Concept is one graded idea. Rules are tried in order and the first one
// that matches decides the outcome.
type Concept struct {
	Name     string `yaml:"name"`
	MaxScore int    `yaml:"maxScore"`
	Rules    []Rule `yaml:"rules"`
}

// Rule matches when every All trigger is present, at least one Any trigger
// is present (if any are listed) and the answer is longer than MinLength
// characters. A rule with no conditions always matches.
type Rule struct {
	All       []string `yaml:"all"`
	Any       []string `yaml:"any"`
	MinLength int      `yaml:"minLength"`

	// Score is awarded as is, plus each credit whose trigger is present.
	Score   int      `yaml:"score"`
	Credits []Credit `yaml:"credits"`

	Feedback string `yaml:"feedback"`
	Status   Status `yaml:"status"`
}

// Credit is partial score for one trigger.
type Credit struct {
	Trigger string `yaml:"trigger"`
	Points  int    `yaml:"points"`
}

func (r Rule) unconditional() bool {
	return len(r.All) == 0 && len(r.Any) == 0 && r.MinLength == 0
}

// matches reports whether the rule applies. lower is the lower-cased answer
// and length the rune count of the untouched answer.
func (r Rule) matches(lower string, length int) bool {
	for _, t := range r.All {
		if !strings.Contains(lower, t) {
			return false
		}
	}
	if len(r.Any) > 0 {
		found := false
		for _, t := range r.Any {
			if strings.Contains(lower, t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return length > r.MinLength
}

func (r Rule) score(lower string) int {
	score := r.Score
	for _, c := range r.Credits {
		if strings.Contains(lower, c.Trigger) {
			score += c.Points
		}
	}
	return score
}

func (c Concept) maxScore() int {
	if c.MaxScore <= 0 {
		return DefaultMaxScore
	}
	return c.MaxScore
}

func (c Concept) grade(lower string, length int) ConceptResult {
	for _, r := range c.Rules {
		if !r.matches(lower, length) {
			continue
		}
		return ConceptResult{
			Concept:  c.Name,
			Score:    r.score(lower),
			MaxScore: c.maxScore(),
			Feedback: r.Feedback,
			Status:   r.Status,
		}
	}
	// Validate guarantees a trailing unconditional rule.
	return ConceptResult{Concept: c.Name, MaxScore: c.maxScore(), Status: StatusIncorrect}
}

// Validate checks that every concept can always be graded and that its
// rules cannot score above the concept's ceiling.
func (r Rubric) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return fmt.Errorf("%w: missing topic", ErrInvalidRubric)
	}
	if len(r.Concepts) == 0 {
		return fmt.Errorf("%w: %s has no concepts", ErrInvalidRubric, r.Topic)
	}
	for _, c := range r.Concepts {
		if c.Name == "" {
			return fmt.Errorf("%w: %s has an unnamed concept", ErrInvalidRubric, r.Topic)
		}
		if len(c.Rules) == 0 || !c.Rules[len(c.Rules)-1].unconditional() {
			return fmt.Errorf("%w: %s/%s must end with an unconditional rule", ErrInvalidRubric, r.Topic, c.Name)
		}
		for i, rule := range c.Rules {
			switch rule.Status {
			case StatusCorrect, StatusPartial, StatusIncorrect:
			default:
				return fmt.Errorf("%w: %s/%s rule %d has status %q", ErrInvalidRubric, r.Topic, c.Name, i, rule.Status)
			}
			ceiling := rule.Score
			for _, credit := range rule.Credits {
				ceiling += credit.Points
			}
			if ceiling > c.maxScore() || rule.Score < 0 {
				return fmt.Errorf("%w: %s/%s rule %d scores outside 0..%d", ErrInvalidRubric, r.Topic, c.Name, i, c.maxScore())
			}
		}
	}
	return nil
}

type rubricFile struct {
	Rubrics []Rubric `yaml:"rubrics"`
}

// ReadRubrics decodes and validates a YAML rubric document. Triggers are
// lower-cased since answers are matched lower-cased.
func ReadRubrics(r io.Reader) ([]Rubric, error) {
	var doc rubricFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode rubrics: %w", err)
	}

	for i := range doc.Rubrics {
		normalize(&doc.Rubrics[i])
		if err := doc.Rubrics[i].Validate(); err != nil {
			return nil, err
		}
	}
	return doc.Rubrics, nil
}

// LoadRubrics reads a rubric file from disk.
func LoadRubrics(path string) ([]Rubric, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rubrics: %w", err)
	}
	defer f.Close()
	return ReadRubrics(f)
}

func normalize(r *Rubric) {
	r.Topic = strings.ToLower(strings.TrimSpace(r.Topic))
	for ci := range r.Concepts {
		for ri := range r.Concepts[ci].Rules {
			rule := &r.Concepts[ci].Rules[ri]
			lowerAll(rule.All)
			lowerAll(rule.Any)
			for k := range rule.Credits {
				rule.Credits[k].Trigger = strings.ToLower(rule.Credits[k].Trigger)
			}
		}
	}
}

func lowerAll(ss []string) {
	for i, s := range ss {
		ss[i] = strings.ToLower(s)
	}
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
