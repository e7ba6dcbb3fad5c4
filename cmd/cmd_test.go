package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ailearn/internal/adaptive"
	"github.com/abhisek/ailearn/internal/config"
	"github.com/abhisek/ailearn/internal/lessons"
	"github.com/abhisek/ailearn/internal/logging"
	"github.com/abhisek/ailearn/internal/profile"
	"github.com/abhisek/ailearn/internal/progress"
	"github.com/abhisek/ailearn/internal/screen"
	"github.com/abhisek/ailearn/internal/store"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type cli struct {
	t   *testing.T
	db  string
	cfg string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv("AILEARN_NO_PACING", "true")
	t.Setenv("AILEARN_BACKEND", "")
	t.Setenv("AILEARN_DB", "")
	dir := t.TempDir()
	return &cli{t: t, db: filepath.Join(dir, "ailearn.db"), cfg: filepath.Join(dir, "config.yaml")}
}

// run executes the root command with args and returns stdout.
func (c *cli) run(stdin string, args ...string) (string, error) {
	c.t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--db", c.db, "--config", c.cfg}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func (c *cli) mustRun(stdin string, args ...string) string {
	c.t.Helper()
	out, err := c.run(stdin, args...)
	require.NoError(c.t, err, out)
	return out
}

func TestLogOptions(t *testing.T) {
	c := config.DefaultConfig()
	c.Database.Path = filepath.Join(t.TempDir(), "ailearn.db")

	root := logOptions(rootCmd, c)
	assert.Equal(t, logging.FileBeside(c.Database.Path), root.File, "the TUI logs to a file")

	sub := logOptions(statsCmd, c)
	assert.Empty(t, sub.File, "subcommands log to stderr")

	c.Logging.File = "/var/log/ailearn.log"
	assert.Equal(t, "/var/log/ailearn.log", logOptions(rootCmd, c).File)
}

func TestCompletionHistoryCountsRepeats(t *testing.T) {
	ctx := t.Context()
	db, err := store.Open(ctx, filepath.Join(t.TempDir(), "ailearn.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	events := db.EventRepo()

	for _, run := range []struct{ lesson, topic string }{
		{"py-variables-1", "python"},
		{"excel-intro-1", "excel"},
		{"py-variables-1", "python"},
		{"py-variables-1", "python"},
	} {
		require.NoError(t, events.AppendLesson(ctx, store.LessonEventData{
			RunID: run.lesson, LessonID: run.lesson, Topic: run.topic, Action: store.ActionCompleted,
		}))
	}
	st := progress.State{CompletedLessons: []string{"py-variables-1", "excel-intro-1"}}
	svc := screen.Services{Catalog: lessons.Default(), Events: events}

	history, err := completionHistory(ctx, svc, st)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, "python", history[3].Topic)
	assert.Equal(t, adaptive.PathDepth, adaptive.ProgressionPath(profile.Default(), history))

	svc.Events = nil
	history, err = completionHistory(ctx, svc, st)
	require.NoError(t, err)
	assert.Equal(t, []adaptive.Completion{
		{LessonID: "py-variables-1", Topic: "python"},
		{LessonID: "excel-intro-1", Topic: "excel"},
	}, history)
}

func TestRecommendedLength(t *testing.T) {
	st := progress.Initial()
	assert.Equal(t, "-", recommendedLength(st.Profile(), st))

	st.LessonHistory = []progress.LessonRecord{{TimeSpent: 1}, {TimeSpent: 2}}
	assert.Equal(t, "1 min", recommendedLength(st.Profile(), st))
}

func TestVersion(t *testing.T) {
	c := newCLI(t)
	assert.Contains(t, c.mustRun("", "version"), "ailearn")
}

func TestLessonCommands(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("", "lesson", "list")
	assert.Contains(t, out, "py-variables-1")
	assert.NotContains(t, out, "linux-intro-1")

	out = c.mustRun("", "lesson", "list", "--all")
	assert.Contains(t, out, "linux-intro-1")

	out = c.mustRun("", "lesson", "generate", "--concept", "Variables", "--state", "tired", "--json")
	var gen struct {
		Lesson struct {
			Concept    string `json:"concept"`
			Simplified bool   `json:"simplified"`
		} `json:"lesson"`
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &gen))
	assert.Equal(t, "Variables", gen.Lesson.Concept)
	assert.True(t, gen.Lesson.Simplified, "tired learners get the simple variant")
	assert.NotEmpty(t, gen.Content)

	_, err := c.run("", "lesson", "generate", "--concept", "x", "--style", "nope")
	assert.Error(t, err)

	assert.Contains(t, c.mustRun("", "lesson", "plan", "--concept", "Funciones"), "PERFIL DEL USUARIO")
}

func TestEvaluateRecordsHistory(t *testing.T) {
	c := newCLI(t)

	assert.Contains(t, c.mustRun("", "evaluate", "--topic", "python"), "Explica los conceptos")

	out := c.mustRun("Las variables guardan valores de tipo int, str y float", "evaluate", "--topic", "python", "--json")
	var res struct {
		Score int `json:"finalScore"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Positive(t, res.Score)

	assert.Contains(t, c.mustRun("", "history"), "evaluation")
}

func TestFeedbackAndChat(t *testing.T) {
	c := newCLI(t)
	assert.NotEmpty(t, strings.TrimSpace(c.mustRun("", "feedback", "--step", "reflection", "aprendí mucho")))

	_, err := c.run("", "feedback", "--step", "bogus", "x")
	assert.Error(t, err)

	out := c.mustRun("¿qué es una variable?\n\n", "chat", "--lesson", "py-variables-1")
	assert.Contains(t, out, "caja etiquetada")
}

func TestExportImportResetRestore(t *testing.T) {
	c := newCLI(t)
	dir := filepath.Dir(c.db)

	st := progress.Initial()
	st.TotalPoints = 120
	st.Goal = "Aprender Python"
	st.HasCompletedOnboarding = true
	data, err := progress.EncodeIndent(st)
	require.NoError(t, err)
	in := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(in, data, 0o644))

	c.mustRun("", "import", in)
	assert.Contains(t, c.mustRun("", "stats"), "120")

	exported := filepath.Join(dir, "out.json")
	c.mustRun("", "export", exported)
	raw, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"goal": "Aprender Python"`)

	_, err = c.run("", "reset")
	assert.Error(t, err, "a full reset needs --yes")

	c.mustRun("", "reset", "--onboarding")
	out := c.mustRun("", "stats", "--json")
	assert.Contains(t, out, `"hasCompletedOnboarding": false`)
	assert.Contains(t, out, `"totalPoints": 120`)

	c.mustRun("", "reset", "--yes")
	assert.Contains(t, c.mustRun("", "stats", "--json"), `"totalPoints": 0`)

	assert.Contains(t, c.mustRun("", "restore"), "ID")
	c.mustRun("", "restore", "latest")
	assert.Contains(t, c.mustRun("", "stats", "--json"), `"totalPoints": 120`)

	_, err = c.run("", "restore", "999")
	assert.Error(t, err)
}
