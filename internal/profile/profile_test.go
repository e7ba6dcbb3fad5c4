package profile

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()
	if p.MentalState != StateNeutral {
		t.Errorf("MentalState = %q, want %q", p.MentalState, StateNeutral)
	}
	if p.CognitiveLoad != LoadMedium {
		t.Errorf("CognitiveLoad = %q, want %q", p.CognitiveLoad, LoadMedium)
	}
	if p.PreferredDuration != 3 {
		t.Errorf("PreferredDuration = %d, want 3", p.PreferredDuration)
	}
	if p.LearningStyle != StyleUnset || p.TechnicalLevel != LevelUnset {
		t.Errorf("style/level = %q/%q, want unset", p.LearningStyle, p.TechnicalLevel)
	}
}

func TestDeriveCognitiveLoad(t *testing.T) {
	tests := []struct {
		state  MentalState
		errors int
		want   CognitiveLoad
	}{
		{StateTired, 0, LoadHigh},
		{StateTired, 5, LoadHigh},
		{StateMotivated, 0, LoadLow},
		{StateMotivated, 5, LoadLow},
		{StateNeutral, 0, LoadMedium},
		{StateNeutral, 2, LoadMedium},
		{StateNeutral, 3, LoadHigh},
	}
	for _, tt := range tests {
		got := DeriveCognitiveLoad(tt.state, tt.errors)
		if got != tt.want {
			t.Errorf("DeriveCognitiveLoad(%q, %d) = %q, want %q", tt.state, tt.errors, got, tt.want)
		}
	}
}

func TestEffectiveStyle(t *testing.T) {
	if got := StyleUnset.Effective(); got != StyleVerbal {
		t.Errorf("StyleUnset.Effective() = %q, want %q", got, StyleVerbal)
	}
	for _, s := range AllStyles() {
		if got := s.Effective(); got != s {
			t.Errorf("%q.Effective() = %q, want itself", s, got)
		}
	}
}

func TestEffectiveMentalState(t *testing.T) {
	tests := []struct {
		in   MentalState
		want MentalState
	}{
		{StateTired, StateTired},
		{StateMotivated, StateMotivated},
		{StateNeutral, StateNeutral},
		{"", StateNeutral},
		{"sleepy", StateNeutral},
	}
	for _, tt := range tests {
		if got := tt.in.Effective(); got != tt.want {
			t.Errorf("%q.Effective() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLearningStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    LearningStyle
		wantErr bool
	}{
		{"visual", StyleVisual, false},
		{" Kinestésico ", StyleKinesthetic, false},
		{"LOGICAL", StyleLogical, false},
		{"auditivo", StyleVerbal, false},
		{"", StyleUnset, false},
		{"telepathic", StyleUnset, true},
	}
	for _, tt := range tests {
		got, err := ParseLearningStyle(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidStyle) {
				t.Errorf("ParseLearningStyle(%q) err = %v, want ErrInvalidStyle", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseLearningStyle(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLearningStyle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseMentalState(t *testing.T) {
	if got, err := ParseMentalState("Cansado"); err != nil || got != StateTired {
		t.Errorf("ParseMentalState(Cansado) = %q, %v", got, err)
	}
	if _, err := ParseMentalState(""); !errors.Is(err, ErrInvalidMentalState) {
		t.Errorf("ParseMentalState(\"\") err = %v, want ErrInvalidMentalState", err)
	}
}

func TestParseTechnicalLevel(t *testing.T) {
	if got, err := ParseTechnicalLevel("avanzado"); err != nil || got != LevelAdvanced {
		t.Errorf("ParseTechnicalLevel(avanzado) = %q, %v", got, err)
	}
	if _, err := ParseTechnicalLevel("guru"); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("ParseTechnicalLevel(guru) err = %v, want ErrInvalidLevel", err)
	}
}

func TestParseCognitiveLoad(t *testing.T) {
	for _, l := range AllLoads() {
		got, err := ParseCognitiveLoad(string(l))
		if err != nil || got != l {
			t.Errorf("ParseCognitiveLoad(%q) = %q, %v", l, got, err)
		}
	}
	if _, err := ParseCognitiveLoad("extreme"); !errors.Is(err, ErrInvalidLoad) {
		t.Errorf("ParseCognitiveLoad(extreme) err = %v, want ErrInvalidLoad", err)
	}
}
