// Package placement runs the short self-assessment that sets a learner's
// level for one topic.
package placement

import (
	"errors"
	"fmt"

	"github.com/abhisek/ailearn/internal/profile"
)

var (
	ErrIncomplete    = errors.New("placement quiz is incomplete")
	ErrInvalidOption = errors.New("invalid option")
)

// SkippedLevel is assigned when the learner skips the quiz.
const SkippedLevel = profile.LevelIntermediate

// Question is one multiple-choice item. Options run from most to least
// experienced, so a lower index means a stronger answer.
type Question struct {
	Prompt  string
	Options []string
}

// Questions returns the quiz for a topic. Topics without their own quiz get
// a generic one phrased with topicName.
func Questions(topic, topicName string) []Question {
	switch topic {
	case "python":
		return []Question{
			{"¿Qué es una variable en Python?", []string{"Un tipo de bucle", "Un contenedor para almacenar datos", "Una función", "No lo sé"}},
			{"¿Entiendes este código: for i in range(10)?", []string{"Sí, es un bucle que itera 10 veces", "Más o menos", "No mucho", "No lo entiendo"}},
			{"¿Has trabajado con listas o diccionarios?", []string{"Sí, frecuentemente", "Un poco", "Solo he oído hablar", "No sé qué son"}},
		}
	case "linux":
		return []Question{
			{"¿Qué hace el comando 'ls'?", []string{"Lista archivos", "Cambia de directorio", "Borra archivos", "No lo sé"}},
			{"¿Has usado la terminal/consola?", []string{"Sí, frecuentemente", "Algunas veces", "Muy poco", "Nunca"}},
			{"¿Sabes qué son los permisos de archivos?", []string{"Sí, los uso regularmente", "Tengo una idea", "He oído del tema", "No lo sé"}},
		}
	case "excel":
		return []Question{
			{"¿Qué hace la fórmula =SUMA()?", []string{"Suma valores", "Promedia valores", "Cuenta celdas", "No lo sé"}},
			{"¿Has usado tablas dinámicas?", []string{"Sí, las domino", "Las he usado un poco", "He oído de ellas", "No sé qué son"}},
			{"¿Sabes usar funciones como BUSCARV o SI?", []string{"Sí, las uso frecuentemente", "Más o menos", "He oído de ellas", "No las conozco"}},
		}
	}

	if topicName == "" {
		topicName = topic
	}
	return []Question{
		{fmt.Sprintf("¿Cuánta experiencia tienes con %s?", topicName), []string{"Experto", "Intermedio", "Principiante", "Ninguna"}},
		{fmt.Sprintf("¿Has usado %s en proyectos reales?", topicName), []string{"Sí, muchas veces", "Algunas veces", "Una vez", "Nunca"}},
		{"¿Cómo calificarías tu nivel?", []string{"Avanzado", "Intermedio", "Básico", "Principiante"}},
	}
}

// Level maps chosen option indexes to a level by their average: at most 1
// is advanced, at most 2.5 intermediate, anything higher beginner.
func Level(answers []int) (profile.TechnicalLevel, error) {
	if len(answers) == 0 {
		return "", ErrIncomplete
	}
	sum := 0
	for _, a := range answers {
		if a < 0 {
			return "", fmt.Errorf("%w: %d", ErrInvalidOption, a)
		}
		sum += a
	}

	avg := float64(sum) / float64(len(answers))
	switch {
	case avg <= 1:
		return profile.LevelAdvanced, nil
	case avg <= 2.5:
		return profile.LevelIntermediate, nil
	default:
		return profile.LevelBeginner, nil
	}
}

// Quiz walks a learner through the questions one at a time.
type Quiz struct {
	Topic     string
	questions []Question
	answers   []int
}

// NewQuiz starts the quiz for a topic.
func NewQuiz(topic, topicName string) *Quiz {
	return &Quiz{Topic: topic, questions: Questions(topic, topicName)}
}

// Current returns the question awaiting an answer and its 0-based position.
// ok is false once every question is answered.
func (q *Quiz) Current() (Question, int, bool) {
	i := len(q.answers)
	if i >= len(q.questions) {
		return Question{}, i, false
	}
	return q.questions[i], i, true
}

// Len is the number of questions.
func (q *Quiz) Len() int { return len(q.questions) }

// Answer records the option chosen for the current question.
func (q *Quiz) Answer(option int) error {
	cur, _, ok := q.Current()
	if !ok {
		return fmt.Errorf("quiz for %s already answered", q.Topic)
	}
	if option < 0 || option >= len(cur.Options) {
		return fmt.Errorf("%w: %d", ErrInvalidOption, option)
	}
	q.answers = append(q.answers, option)
	return nil
}

// Done reports whether every question is answered.
func (q *Quiz) Done() bool { return len(q.answers) == len(q.questions) }

// Result returns the level once the quiz is done.
func (q *Quiz) Result() (profile.TechnicalLevel, error) {
	if !q.Done() {
		return "", ErrIncomplete
	}
	return Level(q.answers)
}
