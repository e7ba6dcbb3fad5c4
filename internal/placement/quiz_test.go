package placement

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/ailearn/internal/profile"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		answers []int
		want    profile.TechnicalLevel
	}{
		{[]int{0, 0, 0}, profile.LevelAdvanced},
		{[]int{1, 1, 1}, profile.LevelAdvanced},
		{[]int{0, 1, 2}, profile.LevelAdvanced},
		{[]int{1, 1, 2}, profile.LevelIntermediate},
		{[]int{2, 2, 3}, profile.LevelIntermediate},
		{[]int{2, 3, 3}, profile.LevelBeginner},
		{[]int{3, 3, 3}, profile.LevelBeginner},
		{[]int{3, 2}, profile.LevelIntermediate},
	}
	for _, tt := range tests {
		got, err := Level(tt.answers)
		if err != nil {
			t.Fatalf("Level(%v) error: %v", tt.answers, err)
		}
		if got != tt.want {
			t.Errorf("Level(%v) = %q, want %q", tt.answers, got, tt.want)
		}
	}
}

func TestLevelErrors(t *testing.T) {
	if _, err := Level(nil); !errors.Is(err, ErrIncomplete) {
		t.Errorf("Level(nil) error = %v, want ErrIncomplete", err)
	}
	if _, err := Level([]int{0, -1}); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Level with negative option error = %v, want ErrInvalidOption", err)
	}
}

func TestQuestions(t *testing.T) {
	for _, topic := range []string{"python", "linux", "excel", "finance"} {
		qs := Questions(topic, "Finanzas")
		if len(qs) != 3 {
			t.Errorf("Questions(%s) has %d questions, want 3", topic, len(qs))
		}
		for _, q := range qs {
			if len(q.Options) != 4 {
				t.Errorf("%s: %q has %d options, want 4", topic, q.Prompt, len(q.Options))
			}
		}
	}

	qs := Questions("finance", "Finanzas")
	if !strings.Contains(qs[0].Prompt, "Finanzas") {
		t.Errorf("generic prompt = %q, want topic name", qs[0].Prompt)
	}
	qs = Questions("marketing", "")
	if !strings.Contains(qs[1].Prompt, "marketing") {
		t.Errorf("generic prompt without name = %q, want topic id", qs[1].Prompt)
	}
}

func TestQuizWalkthrough(t *testing.T) {
	q := NewQuiz("python", "Python")
	if q.Len() != 3 {
		t.Fatalf("Len = %d, want 3", q.Len())
	}
	if _, err := q.Result(); !errors.Is(err, ErrIncomplete) {
		t.Errorf("Result before answers error = %v, want ErrIncomplete", err)
	}

	if err := q.Answer(7); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Answer(7) error = %v, want ErrInvalidOption", err)
	}

	for i, opt := range []int{3, 3, 2} {
		_, idx, ok := q.Current()
		if !ok || idx != i {
			t.Fatalf("Current = %d, %v; want %d, true", idx, ok, i)
		}
		if err := q.Answer(opt); err != nil {
			t.Fatalf("Answer(%d): %v", opt, err)
		}
	}

	if !q.Done() {
		t.Fatal("Done = false after all answers")
	}
	if _, _, ok := q.Current(); ok {
		t.Error("Current ok after all answers")
	}
	if err := q.Answer(0); err == nil {
		t.Error("Answer after completion succeeded")
	}

	got, err := q.Result()
	if err != nil {
		t.Fatal(err)
	}
	if got != profile.LevelBeginner {
		t.Errorf("Result = %q, want %q", got, profile.LevelBeginner)
	}
}
