package adaptive

import (
	"strings"

	"github.com/abhisek/ailearn/internal/profile"
)

// Shape is the form the micro-content takes.
type Shape string

const (
	ShapeDiagram    Shape = "diagram"
	ShapeText       Shape = "text"
	ShapeCode       Shape = "code"
	ShapeComparison Shape = "comparison"
)

// Content is a rendered content body together with its shape.
type Content struct {
	Shape Shape
	Lines []string
}

// Text joins the content lines.
func (c Content) Text() string {
	return strings.Join(c.Lines, "\n")
}

// ShapeFor maps a learning style to its content shape. An unset style is
// treated as verbal.
func ShapeFor(style profile.LearningStyle) Shape {
	switch style.Effective() {
	case profile.StyleVisual:
		return ShapeDiagram
	case profile.StyleKinesthetic:
		return ShapeCode
	case profile.StyleLogical:
		return ShapeComparison
	default:
		return ShapeText
	}
}

// ContentFormat renders the micro-content for a concept in the shape that
// fits the learning style.
func ContentFormat(style profile.LearningStyle, topic, concept string) Content {
	shape := ShapeFor(style)
	switch shape {
	case ShapeDiagram:
		return Content{Shape: shape, Lines: []string{
			"📊 DIAGRAMA: " + concept,
			"",
			"┌─────────────┐",
			"│   Entrada   │",
			"└──────┬──────┘",
			"       │",
			"       ▼",
			"┌─────────────┐",
			"│  Proceso    │",
			"└──────┬──────┘",
			"       │",
			"       ▼",
			"┌─────────────┐",
			"│   Salida    │",
			"└─────────────┘",
		}}
	case ShapeCode:
		return Content{Shape: shape, Lines: []string{
			"// Aprende haciendo:",
			"function ejemplo" + strings.Join(strings.Fields(concept), "") + "() {",
			"  // 1. Define tu entrada",
			"  const entrada = 'dato'",
			"  ",
			"  // 2. Procesa",
			"  const resultado = entrada.toUpperCase()",
			"  ",
			"  // 3. Devuelve",
			"  return resultado",
			"}",
		}}
	case ShapeComparison:
		return Content{Shape: shape, Lines: []string{
			concept + " vs Alternativas:",
			"",
			"✅ " + concept + ":",
			"  - Ventaja 1: Eficiente",
			"  - Ventaja 2: Flexible",
			"",
			"❌ Alternativa clásica:",
			"  - Más lento",
			"  - Menos expresivo",
		}}
	default:
		return Content{Shape: ShapeText, Lines: []string{
			concept + " es fundamental en " + topic + ". Funciona mediante pasos claros: define, procesa, devuelve resultado.",
		}}
	}
}

// Channel is the sensory channel used to present content.
type Channel string

const (
	ChannelImage      Channel = "image"
	ChannelSchematic  Channel = "schematic"
	ChannelComparison Channel = "comparison"
	ChannelText       Channel = "text"
)

// SensoryChannel picks the presentation channel. First matching rule wins.
func SensoryChannel(p profile.Profile) Channel {
	switch {
	case p.LearningStyle == profile.StyleVisual:
		return ChannelImage
	case p.LearningStyle == profile.StyleLogical:
		return ChannelSchematic
	case p.Tired():
		return ChannelComparison
	default:
		return ChannelText
	}
}

// Order is the sequence in which lesson parts are presented.
type Order string

const (
	OrderTopDown         Order = "topdown"
	OrderExampleFirst    Order = "examplefirst"
	OrderConceptPractice Order = "conceptpractice"
)

// ContentOrder picks the lesson part ordering.
func ContentOrder(p profile.Profile) Order {
	switch {
	case p.LearningStyle == profile.StyleKinesthetic:
		return OrderExampleFirst
	case p.TechnicalLevel == profile.LevelAdvanced:
		return OrderConceptPractice
	default:
		return OrderTopDown
	}
}

// Tone is the register the lesson is written in.
type Tone string

const (
	ToneDirective      Tone = "directive"
	ToneConversational Tone = "conversational"
	ToneTechnical      Tone = "technical"
)

// ToneFor picks the lesson tone.
func ToneFor(p profile.Profile) Tone {
	switch {
	case p.Tired() || p.CognitiveLoad == profile.LoadHigh:
		return ToneDirective
	case p.TechnicalLevel == profile.LevelAdvanced:
		return ToneTechnical
	default:
		return ToneConversational
	}
}

// Practice is the kind of mini practice offered after the content.
type Practice string

const (
	PracticeQuiz      Practice = "quiz"
	PracticeDebug     Practice = "debug"
	PracticeComplete  Practice = "complete"
	PracticeBuild     Practice = "build"
	PracticeReasoning Practice = "reasoning"
)

// PracticeType picks the practice kind. Style rules take priority over mood.
func PracticeType(p profile.Profile) Practice {
	switch {
	case p.LearningStyle == profile.StyleLogical:
		return PracticeReasoning
	case p.LearningStyle == profile.StyleKinesthetic:
		return PracticeDebug
	case p.LearningStyle == profile.StyleVisual:
		return PracticeComplete
	case p.Tired():
		return PracticeQuiz
	default:
		return PracticeBuild
	}
}

// Depth is how much reflection the closing prompt asks for.
type Depth string

const (
	DepthMinimal  Depth = "minimal"
	DepthModerate Depth = "moderate"
	DepthDeep     Depth = "deep"
)

// MetacognitionDepth picks the reflection depth.
func MetacognitionDepth(p profile.Profile) Depth {
	switch {
	case p.Tired():
		return DepthMinimal
	case p.TechnicalLevel == profile.LevelAdvanced && p.CognitiveLoad == profile.LoadLow:
		return DepthDeep
	default:
		return DepthModerate
	}
}

// Path is the direction of progression after a lesson.
type Path string

const (
	PathDepth   Path = "depth"
	PathBreadth Path = "breadth"
)

// Completion is one entry of the lesson history used for progression.
type Completion struct {
	LessonID string
	Topic    string
}

// progressionWindow is how many recent completions are considered.
const progressionWindow = 5

// ProgressionPath goes deeper when at least three of the last five
// completions share the topic of the most recent one and the learner is not
// tired. History is ordered oldest first.
func ProgressionPath(p profile.Profile, history []Completion) Path {
	if len(history) == 0 || p.Tired() {
		return PathBreadth
	}
	recent := history
	if len(recent) > progressionWindow {
		recent = recent[len(recent)-progressionWindow:]
	}
	latest := recent[len(recent)-1].Topic
	same := 0
	for _, c := range recent {
		if c.Topic == latest {
			same++
		}
	}
	if same >= 3 {
		return PathDepth
	}
	return PathBreadth
}
