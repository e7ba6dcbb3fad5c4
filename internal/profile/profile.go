package profile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidStyle       = errors.New("invalid learning style")
	ErrInvalidMentalState = errors.New("invalid mental state")
	ErrInvalidLevel       = errors.New("invalid technical level")
	ErrInvalidLoad        = errors.New("invalid cognitive load")
)

// LearningStyle is how the learner prefers content to be shaped.
type LearningStyle string

const (
	StyleUnset       LearningStyle = ""
	StyleVisual      LearningStyle = "visual"
	StyleVerbal      LearningStyle = "verbal"
	StyleKinesthetic LearningStyle = "kinesthetic"
	StyleLogical     LearningStyle = "logical"
)

// AllStyles returns the selectable learning styles in display order.
func AllStyles() []LearningStyle {
	return []LearningStyle{StyleVisual, StyleVerbal, StyleKinesthetic, StyleLogical}
}

// Effective resolves the unset style to verbal.
func (s LearningStyle) Effective() LearningStyle {
	if s == StyleUnset {
		return StyleVerbal
	}
	return s
}

// DisplayName returns the Spanish label shown to learners.
func (s LearningStyle) DisplayName() string {
	switch s {
	case StyleVisual:
		return "Visual"
	case StyleVerbal:
		return "Verbal"
	case StyleKinesthetic:
		return "Kinestésico"
	case StyleLogical:
		return "Lógico"
	default:
		return "Sin definir"
	}
}

// MentalState is the learner's self-reported fatigue or motivation.
type MentalState string

const (
	StateTired     MentalState = "tired"
	StateNeutral   MentalState = "neutral"
	StateMotivated MentalState = "motivated"
)

// AllMentalStates returns the mental states in display order.
func AllMentalStates() []MentalState {
	return []MentalState{StateTired, StateNeutral, StateMotivated}
}

// Effective maps anything outside the enumeration to neutral.
func (m MentalState) Effective() MentalState {
	switch m {
	case StateTired, StateMotivated:
		return m
	default:
		return StateNeutral
	}
}

func (m MentalState) DisplayName() string {
	switch m {
	case StateTired:
		return "Cansado"
	case StateMotivated:
		return "Motivado"
	default:
		return "Neutral"
	}
}

// TechnicalLevel is the learner's self-assessed or measured proficiency.
type TechnicalLevel string

const (
	LevelUnset        TechnicalLevel = ""
	LevelBeginner     TechnicalLevel = "beginner"
	LevelIntermediate TechnicalLevel = "intermediate"
	LevelAdvanced     TechnicalLevel = "advanced"
)

// AllLevels returns the technical levels in display order.
func AllLevels() []TechnicalLevel {
	return []TechnicalLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

func (l TechnicalLevel) DisplayName() string {
	switch l {
	case LevelBeginner:
		return "Principiante"
	case LevelIntermediate:
		return "Intermedio"
	case LevelAdvanced:
		return "Avanzado"
	default:
		return "Sin definir"
	}
}

// CognitiveLoad is a derived intensity bucket.
type CognitiveLoad string

const (
	LoadLow    CognitiveLoad = "low"
	LoadMedium CognitiveLoad = "medium"
	LoadHigh   CognitiveLoad = "high"
)

// AllLoads returns the cognitive loads from lightest to heaviest.
func AllLoads() []CognitiveLoad {
	return []CognitiveLoad{LoadLow, LoadMedium, LoadHigh}
}

// DefaultPreferredDuration is the session length in minutes for a fresh profile.
const DefaultPreferredDuration = 3

// Profile describes a learner at one point in time. It is rebuilt from the
// progress store on every read and never mutated in place by consumers.
type Profile struct {
	LearningStyle     LearningStyle  `json:"learningStyle"`
	MentalState       MentalState    `json:"mentalState"`
	TechnicalLevel    TechnicalLevel `json:"technicalLevel"`
	RecentErrors      int            `json:"recentErrors"`
	RecentSuccesses   int            `json:"recentSuccesses"`
	PreferredDuration int            `json:"preferredDuration"`
	CognitiveLoad     CognitiveLoad  `json:"cognitiveLoad"`
}

// Default returns the profile of a learner who has not onboarded yet.
func Default() Profile {
	return Profile{
		MentalState:       StateNeutral,
		PreferredDuration: DefaultPreferredDuration,
		CognitiveLoad:     LoadMedium,
	}
}

// Tired reports whether the learner said they are tired.
func (p Profile) Tired() bool { return p.MentalState == StateTired }

// Motivated reports whether the learner said they are motivated.
func (p Profile) Motivated() bool { return p.MentalState == StateMotivated }

// DeriveCognitiveLoad picks the load for a lesson from how the learner feels
// and how the current run is going. Mental state wins over errors.
func DeriveCognitiveLoad(state MentalState, recentErrors int) CognitiveLoad {
	switch {
	case state == StateTired:
		return LoadHigh
	case state == StateMotivated:
		return LoadLow
	case recentErrors > 2:
		return LoadHigh
	default:
		return LoadMedium
	}
}

// ParseLearningStyle accepts the canonical values and the Spanish labels.
func ParseLearningStyle(s string) (LearningStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "visual":
		return StyleVisual, nil
	case "verbal", "auditivo", "auditory":
		return StyleVerbal, nil
	case "kinesthetic", "kinestesico", "kinestésico":
		return StyleKinesthetic, nil
	case "logical", "logico", "lógico":
		return StyleLogical, nil
	case "", "unset":
		return StyleUnset, nil
	}
	return StyleUnset, fmt.Errorf("%w: %q", ErrInvalidStyle, s)
}

// ParseMentalState accepts the canonical values and the Spanish labels.
func ParseMentalState(s string) (MentalState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tired", "cansado":
		return StateTired, nil
	case "neutral":
		return StateNeutral, nil
	case "motivated", "motivado":
		return StateMotivated, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMentalState, s)
}

// ParseTechnicalLevel accepts the canonical values and the Spanish labels.
func ParseTechnicalLevel(s string) (TechnicalLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner", "principiante":
		return LevelBeginner, nil
	case "intermediate", "intermedio":
		return LevelIntermediate, nil
	case "advanced", "avanzado":
		return LevelAdvanced, nil
	case "", "unset":
		return LevelUnset, nil
	}
	return LevelUnset, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// ParseCognitiveLoad accepts low, medium and high.
func ParseCognitiveLoad(s string) (CognitiveLoad, error) {
	switch CognitiveLoad(strings.ToLower(strings.TrimSpace(s))) {
	case LoadLow:
		return LoadLow, nil
	case LoadMedium:
		return LoadMedium, nil
	case LoadHigh:
		return LoadHigh, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLoad, s)
}
