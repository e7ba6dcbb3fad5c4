package evaluation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatePythonVariables(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		score  int
		status Status
	}{
		{"assignment and value", "una variable se asigna con un valor", 10, StatusCorrect},
		{"only broad trigger", "sé lo que es una variable", 5, StatusPartial},
		{"assign without value", "se asigna", 5, StatusPartial},
		{"no trigger", "hola mundo", 0, StatusIncorrect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate("python", tt.answer)
			require.NoError(t, err)
			require.Len(t, res.Evaluations, 3)

			got := res.Evaluations[0]
			assert.Equal(t, "Variables", got.Concept)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.status, got.Status)
		})
	}
}

func TestEvaluatePythonTypesPartialCredit(t *testing.T) {
	tests := []struct {
		answer string
		score  int
		status Status
	}{
		{"int y str", 6, StatusPartial},
		{"int y float", 7, StatusPartial},
		{"solo float", 4, StatusPartial},
		{"cada tipo importa", 0, StatusPartial},
		{"int, str y float", 10, StatusCorrect},
		{"nada", 0, StatusIncorrect},
	}
	for _, tt := range tests {
		res, err := Evaluate("python", tt.answer)
		require.NoError(t, err)
		got := res.Evaluations[1]
		assert.Equal(t, tt.score, got.Score, tt.answer)
		assert.Equal(t, tt.status, got.Status, tt.answer)
	}
}

func TestEvaluateFinalScore(t *testing.T) {
	tests := []struct {
		name   string
		topic  string
		answer string
		want   int
	}{
		{"python full marks", "python", "uso int str float variable asigna valor =", 100},
		{"python variables only", "python", "asigna valor", 33},
		{"python partial variable", "python", "variable", 17},
		{"python nothing", "python", "hola", 0},
		{"topic is case insensitive", "Python", "uso int str float variable asigna valor =", 100},
		{"excel full marks", "excel", "=SUMA(A1:A3)", 100},
		{"excel keywords", "excel", "mis formulas usan suma y referencias de celda a1", 100},
		{"excel functions fallback", "excel", "hola", 17},
		{"generic detailed", "finance", strings.Repeat("a", 101), 100},
		{"generic brief", "finance", strings.Repeat("a", 51), 67},
		{"generic short", "finance", "corto", 33},
		{"generic at threshold", "marketing", strings.Repeat("a", 100), 67},
		{"generic counts characters", "finance", strings.Repeat("ñ", 60), 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(tt.topic, tt.answer)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Score)
			assert.GreaterOrEqual(t, res.Score, 0)
			assert.LessOrEqual(t, res.Score, 100)
		})
	}
}

func TestEvaluateGenericFallback(t *testing.T) {
	res, err := Evaluate("linux", "ls y cd")
	require.NoError(t, err)
	assert.Equal(t, GenericTopic, res.Topic)
	require.Len(t, res.Evaluations, 1)
	assert.Equal(t, "Comprensión general", res.Evaluations[0].Concept)
	assert.Equal(t, 15, res.Evaluations[0].MaxScore)
	assert.Equal(t, "Insuficiente: Respuesta muy corta.", res.Evaluations[0].Feedback)
}

func TestEvaluateEmptyAnswer(t *testing.T) {
	for _, answer := range []string{"", "   ", "\n\t"} {
		_, err := Evaluate("python", answer)
		assert.ErrorIs(t, err, ErrEmptyAnswer)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	first, err := Evaluate("excel", "uso la función promedio en la celda B2")
	require.NoError(t, err)
	for range 5 {
		again, err := Evaluate("excel", "uso la función promedio en la celda B2")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestLoadRubrics(t *testing.T) {
	rubrics, err := LoadRubrics("testdata/rubrics.yaml")
	require.NoError(t, err)
	require.Len(t, rubrics, 1)
	assert.Equal(t, "linux", rubrics[0].Topic)
	assert.Equal(t, []string{"ls", "cd", "pwd"}, rubrics[0].Concepts[0].Rules[0].Any)

	e, err := New(rubrics...)
	require.NoError(t, err)
	assert.Equal(t, []string{"excel", "linux", "python"}, e.Topics())

	res, err := e.Evaluate("linux", "Uso LS en /home")
	require.NoError(t, err)
	assert.Equal(t, 100, res.Score)

	res, err = e.Evaluate("linux", "voy a /tmp")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Evaluations[0].Score)
	assert.Equal(t, StatusPartial, res.Evaluations[1].Status)
	assert.Equal(t, 25, res.Score)
}

func TestLoadRubricsRejectsInvalid(t *testing.T) {
	_, err := LoadRubrics("testdata/bad_rubrics.yaml")
	assert.ErrorIs(t, err, ErrInvalidRubric)

	_, err = LoadRubrics("testdata/missing.yaml")
	assert.Error(t, err)

	_, err = ReadRubrics(strings.NewReader("rubrics:\n  - topic: x\n    unknown: 1\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		rubric  Rubric
		wantErr bool
	}{
		{"builtin python", pythonRubric, false},
		{"builtin generic", genericRubric, false},
		{"missing topic", Rubric{Concepts: pythonRubric.Concepts}, true},
		{"no concepts", Rubric{Topic: "x"}, true},
		{
			"score above ceiling",
			Rubric{Topic: "x", Concepts: []Concept{{Name: "c", Rules: []Rule{{Score: 11, Status: StatusCorrect}}}}},
			true,
		},
		{
			"unknown status",
			Rubric{Topic: "x", Concepts: []Concept{{Name: "c", Rules: []Rule{{Score: 1, Status: "meh"}}}}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rubric.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRubric)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuestion(t *testing.T) {
	q, focus := Default().Question("python", "Python")
	assert.Equal(t, "Explica los conceptos fundamentales que has aprendido sobre Python", q)
	assert.True(t, strings.HasSuffix(focus, "variables, tipos de datos y sintaxis."))

	_, focus = Default().Question("finance", "")
	assert.True(t, strings.HasSuffix(focus, "tu comprensión general del tema."))
}
