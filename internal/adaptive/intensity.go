package adaptive

import (
	"strings"

	"github.com/abhisek/ailearn/internal/profile"
)

const (
	calmClosing    = "\n\n💡 Un solo concepto hoy. Tómatelo con calma."
	challengeBlock = "\n\n🚀 Reto adicional: ¿Puedes aplicar esto en un caso más complejo?\n\nEjemplo avanzado: Combina este concepto con el anterior."
)

// Intensity is the session length in minutes and the content adjusted to it.
type Intensity struct {
	Minutes int
	Content string
}

// SessionMinutes returns the micro-session length. Tired or overloaded
// learners get 1 minute, motivated learners with low load get 3, everyone
// else 2.
func SessionMinutes(p profile.Profile) int {
	switch {
	case p.Tired() || p.CognitiveLoad == profile.LoadHigh:
		return 1
	case p.Motivated() && p.CognitiveLoad == profile.LoadLow:
		return 3
	default:
		return 2
	}
}

// AdaptIntensity trims or extends base content to match SessionMinutes.
func AdaptIntensity(p profile.Profile, base string) Intensity {
	minutes := SessionMinutes(p)
	switch minutes {
	case 1:
		first, _, _ := strings.Cut(base, "\n")
		return Intensity{Minutes: minutes, Content: first + calmClosing}
	case 3:
		return Intensity{Minutes: minutes, Content: base + challengeBlock}
	default:
		return Intensity{Minutes: minutes, Content: base}
	}
}

// RecommendedLength suggests a lesson length in minutes from the learner's
// average session time.
func RecommendedLength(p profile.Profile, avgSessionMinutes float64) int {
	switch {
	case avgSessionMinutes < 2:
		return 1
	case avgSessionMinutes > 5 && p.Motivated():
		return 5
	default:
		return 3
	}
}
