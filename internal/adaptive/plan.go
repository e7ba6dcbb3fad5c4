package adaptive

import (
	"fmt"
	"strings"

	"github.com/abhisek/ailearn/internal/profile"
)

// Plan bundles every selector decision for one profile.
type Plan struct {
	Shape              Shape    `json:"shape"`
	Channel            Channel  `json:"channel"`
	Order              Order    `json:"contentOrder"`
	Tone               Tone     `json:"tone"`
	Practice           Practice `json:"practiceType"`
	Metacognition      Depth    `json:"metacognitionDepth"`
	SessionMinutes     int      `json:"sessionMinutes"`
	EstimatedDuration  int      `json:"estimatedDuration"`
	AlternativeNeeded  bool     `json:"alternativeNeeded"`
	IncreaseDifficulty bool     `json:"increaseDifficulty"`
}

// BuildPlan runs all selectors against p.
func BuildPlan(p profile.Profile) Plan {
	return Plan{
		Shape:              ShapeFor(p.LearningStyle),
		Channel:            SensoryChannel(p),
		Order:              ContentOrder(p),
		Tone:               ToneFor(p),
		Practice:           PracticeType(p),
		Metacognition:      MetacognitionDepth(p),
		SessionMinutes:     SessionMinutes(p),
		EstimatedDuration:  p.PreferredDuration,
		AlternativeNeeded:  p.RecentErrors > 2,
		IncreaseDifficulty: p.RecentSuccesses > 3,
	}
}

// Brief renders the plan as the Spanish instruction sheet a lesson author
// follows when writing the micro-lesson for topic and concept.
func Brief(topic, concept string, p profile.Profile) string {
	plan := BuildPlan(p)
	var b strings.Builder

	b.WriteString("Eres el motor de micro-lecciones adaptativas de AILearn.\n\n")

	b.WriteString("PERFIL DEL USUARIO:\n")
	style := string(p.LearningStyle)
	if style == "" {
		style = "desconocido"
	}
	level := string(p.TechnicalLevel)
	if level == "" {
		level = "principiante"
	}
	fmt.Fprintf(&b, "- Estilo de aprendizaje: %s\n", style)
	fmt.Fprintf(&b, "- Estado mental: %s\n", p.MentalState)
	fmt.Fprintf(&b, "- Nivel técnico: %s\n", level)
	fmt.Fprintf(&b, "- Carga cognitiva: %s\n", p.CognitiveLoad)

	b.WriteString("\nADAPTACIONES REQUERIDAS:\n")
	fmt.Fprintf(&b, "- Tono: %s\n", toneLabel(plan.Tone))
	fmt.Fprintf(&b, "- Formato: %s\n", formatLabel(p.LearningStyle))
	fmt.Fprintf(&b, "- Duración objetivo: %d minutos\n", p.PreferredDuration)
	fmt.Fprintf(&b, "- Tipo de práctica: %s\n", plan.Practice)
	fmt.Fprintf(&b, "- Orden: %s\n", orderLabel(plan.Order))

	b.WriteString("\nESTRUCTURA OBLIGATORIA:\n")
	b.WriteString("1. **Objetivo mini (1 frase)** → Qué aprenderá hoy\n")
	b.WriteString("2. **Micro-contenido adaptado** → Formato según perfil\n")
	fmt.Fprintf(&b, "3. **Mini práctica adaptada** → Según tipo: %s\n", plan.Practice)
	b.WriteString("4. **Chequeo de comprensión** → 1 pregunta simple\n")
	fmt.Fprintf(&b, "5. **Cierre metacognitivo** → %s\n", depthLabel(plan.Metacognition))
	b.WriteString("6. **Siguiente paso** → Personalizado\n")

	var notes []string
	if p.Tired() {
		notes = append(notes, "⚠️ Usuario saturado: Contenido ultra-simple, 1 solo concepto, máximo 1 minuto.")
	}
	if p.Motivated() {
		notes = append(notes, "🚀 Usuario motivado: Puedes añadir un mini-reto opcional.")
	}
	if plan.AlternativeNeeded {
		notes = append(notes, "⚠️ El usuario ha tenido errores recientes: Da explicación alternativa (más simple o más visual).")
	}
	if plan.IncreaseDifficulty {
		notes = append(notes, "✅ El usuario va bien: Incrementa levemente la dificultad.")
	}
	if len(notes) > 0 {
		b.WriteString("\n" + strings.Join(notes, "\n") + "\n")
	}

	fmt.Fprintf(&b, "\nTEMA: %s\n", topic)
	fmt.Fprintf(&b, "CONCEPTO ESPECÍFICO: %s\n\n", concept)
	b.WriteString("Genera la micro-lección completa ahora.")

	return b.String()
}

func toneLabel(t Tone) string {
	switch t {
	case ToneDirective:
		return "Directo, paso a paso"
	case ToneTechnical:
		return "Técnico, preciso"
	default:
		return "Conversacional, amigable"
	}
}

func formatLabel(s profile.LearningStyle) string {
	switch s {
	case profile.StyleVisual:
		return "Usa diagramas ASCII, esquemas"
	case profile.StyleKinesthetic:
		return "Comienza con ejemplo práctico"
	default:
		return "Texto claro y directo"
	}
}

func orderLabel(o Order) string {
	switch o {
	case OrderExampleFirst:
		return "Ejemplo → Teoría"
	case OrderTopDown:
		return "Concepto → Ejemplo → Aplicación"
	default:
		return "Concepto → Práctica → Síntesis"
	}
}

func depthLabel(d Depth) string {
	switch d {
	case DepthMinimal:
		return "Muy breve (3 palabras)"
	case DepthDeep:
		return "Reflexión profunda"
	default:
		return "Pregunta corta de reflexión"
	}
}
