package lessons

import (
	"fmt"

	"github.com/abhisek/ailearn/internal/profile"
)

func objectiveFor(state profile.MentalState, topic, concept string) string {
	switch state {
	case profile.StateTired:
		return "🎯 Objetivo simple: Entender lo básico de " + concept
	case profile.StateMotivated:
		return "🎯 Objetivo desafiante: Aplicar " + concept + " de forma avanzada"
	default:
		return "🎯 Objetivo de hoy: Dominar " + concept + " en " + topic
	}
}

func diagramBody(concept string) string {
	return fmt.Sprintf("📚 **%[1]s**\n\n"+
		"Observa este flujo:\n\n"+
		"```\n"+
		"┌──────────────┐\n"+
		"│   Entrada    │\n"+
		"│   (Input)    │\n"+
		"└──────┬───────┘\n"+
		"       │\n"+
		"       ▼\n"+
		"┌──────────────┐\n"+
		"│  Proceso de  │\n"+
		"│  %-12[1]s │\n"+
		"└──────┬───────┘\n"+
		"       │\n"+
		"       ▼\n"+
		"┌──────────────┐\n"+
		"│   Resultado  │\n"+
		"│   (Output)   │\n"+
		"└──────────────┘\n"+
		"```\n\n"+
		"**Paso 1:** Define tu entrada\n"+
		"**Paso 2:** Aplica %[1]s\n"+
		"**Paso 3:** Obtén el resultado", concept)
}

func codeBody(concept string) string {
	return fmt.Sprintf("📚 **%[1]s** - Aprende haciendo\n\n"+
		"Empieza con este ejemplo práctico:\n\n"+
		"```javascript\n"+
		"// Ejemplo real de %[1]s\n"+
		"function ejemplo() {\n"+
		"  // 1. Define tus datos\n"+
		"  const datos = \"información inicial\"\n"+
		"\n"+
		"  // 2. Aplica %[1]s\n"+
		"  const resultado = datos.toUpperCase()\n"+
		"\n"+
		"  // 3. Usa el resultado\n"+
		"  console.log(resultado)\n"+
		"  return resultado\n"+
		"}\n"+
		"\n"+
		"ejemplo() // Prueba esto ahora\n"+
		"```\n\n"+
		"**Por qué funciona:** %[1]s toma una entrada, la transforma, y devuelve un nuevo valor.", concept)
}

func comparisonBody(topic, concept string) string {
	return fmt.Sprintf("📚 **%[1]s** - Análisis lógico\n\n"+
		"**Definición:** %[1]s es un concepto clave en %[2]s que permite procesar información de forma estructurada.\n\n"+
		"**Ventajas vs Alternativas:**\n\n"+
		"✅ **%[1]s:**\n"+
		"  • Eficiente y predecible\n"+
		"  • Fácil de mantener\n"+
		"  • Bien documentado\n\n"+
		"❌ **Enfoque tradicional:**\n"+
		"  • Más código repetitivo\n"+
		"  • Menos flexible\n"+
		"  • Mayor margen de error\n\n"+
		"**Cuándo usar %[1]s:**\n"+
		"  → Cuando necesitas transformar datos\n"+
		"  → Cuando buscas código limpio\n"+
		"  → Cuando importa la escalabilidad", concept, topic)
}

func textBody(topic, concept string) string {
	return fmt.Sprintf("📚 **%[1]s**\n\n"+
		"%[1]s es un concepto fundamental en %[2]s. Funciona de manera simple:\n\n"+
		"**En pocas palabras:** Toma una entrada, la procesa siguiendo reglas específicas, y devuelve un resultado.\n\n"+
		"**¿Por qué es importante?**\n"+
		"• Te permite escribir código más limpio\n"+
		"• Facilita el mantenimiento\n"+
		"• Es un estándar en la industria\n\n"+
		"**Ejemplo concreto:**\n"+
		"Imagina que tienes información que necesitas transformar. En vez de hacerlo manualmente, %[1]s lo hace automáticamente siguiendo los pasos que defines.", concept, topic)
}

// Motivated learners get one extra tip per content shape.
var motivatedTips = map[string]string{
	"diagram":    "🚀 **Tip avanzado:** Combina esto con conceptos previos para casos complejos.",
	"code":       "🚀 **Reto:** Modifica este código para agregar validación de errores.",
	"comparison": "🚀 **Consideración avanzada:** Evalúa el costo de performance vs simplicidad del código.",
	"text":       "🚀 **Profundiza:** Una vez domines esto, podrás combinarlo con otros patrones avanzados.",
}

func simpleBody(concept string) string {
	return fmt.Sprintf("📚 **%[1]s** - Versión simple\n\n"+
		"**Lo esencial:** %[1]s toma algo, lo procesa, y te da un resultado.\n\n"+
		"**Un ejemplo:**\n"+
		"```\n"+
		"entrada → [%[1]s] → salida\n"+
		"```\n\n"+
		"💡 **Eso es todo por hoy.** Descansa y vuelve cuando estés listo.", concept)
}

func alternativeExplanation(concept string) string {
	return fmt.Sprintf("\n\n---\n\n"+
		"💡 **Explicación alternativa** (detectamos dificultad):\n\n"+
		"Piensa en %[1]s como una máquina:\n"+
		"1. Le das algo\n"+
		"2. Ella lo transforma\n"+
		"3. Te devuelve el resultado\n\n"+
		"Es como una licuadora: le das frutas (entrada), las procesa (%[1]s), y te da un smoothie (salida).", concept)
}

func practiceFor(state profile.MentalState, topic, concept string) string {
	switch state {
	case profile.StateTired:
		return fmt.Sprintf("✏️ **Mini Práctica**\n\n"+
			"Completa esta frase:\n"+
			"\"%s sirve para ___________\"\n\n"+
			"(Escribe 1-2 oraciones solamente)", concept)
	case profile.StateMotivated:
		return fmt.Sprintf("✏️ **Práctica con Reto**\n\n"+
			"**Nivel 1:** Explica cómo funciona %[1]s\n\n"+
			"**Nivel 2 (Reto):** Describe un caso complejo donde %[1]s se combina con otros conceptos de %[2]s.\n\n"+
			"Da ejemplos específicos y menciona beneficios.", concept, topic)
	default:
		return fmt.Sprintf("✏️ **Mini Práctica**\n\n"+
			"Explica con tus propias palabras cómo aplicarías %[1]s en un proyecto real.\n\n"+
			"Ejemplo: \"En mi proyecto de [X], usaría %[1]s para...\"\n\n"+
			"(2-3 oraciones)", concept)
	}
}

func comprehensionFor(state profile.MentalState, concept string) string {
	switch state {
	case profile.StateTired:
		return fmt.Sprintf("❓ **Chequeo rápido:** En 3 palabras, ¿qué es %s?", concept)
	case profile.StateMotivated:
		return fmt.Sprintf("❓ **Chequeo de Comprensión**\n\n"+
			"Responde: ¿Cuál es el propósito principal de %s y en qué se diferencia de otros enfoques?\n\n"+
			"Menciona al menos una ventaja clave.", concept)
	default:
		return fmt.Sprintf("❓ **Chequeo de Comprensión**\n\n"+
			"Responde: ¿Cuál es el propósito principal de %s?\n\n"+
			"(Una frase clara es suficiente)", concept)
	}
}

func metacognitionFor(state profile.MentalState, concept string) string {
	switch state {
	case profile.StateTired:
		return "💭 **Reflexión breve**\n\n" +
			"Resume en 3 palabras lo que aprendiste hoy:\n" +
			"1. ___________\n" +
			"2. ___________\n" +
			"3. ___________"
	case profile.StateMotivated:
		return fmt.Sprintf("💭 **Reflexión Profunda**\n\n"+
			"Reflexiona sobre tu aprendizaje:\n"+
			"• ¿Cómo conecta %s con lo que ya sabías?\n"+
			"• ¿Qué aplicación práctica le ves?\n"+
			"• ¿Qué pregunta te gustaría explorar más?\n\n"+
			"(3-4 oraciones)", concept)
	default:
		return "💭 **Reflexión Metacognitiva**\n\n" +
			"Responde brevemente:\n" +
			"• ¿Qué fue lo más claro de esta lección?\n" +
			"• ¿Qué necesitarías repasar?\n\n" +
			"(2-3 oraciones)"
	}
}

const nextStepHeader = "➡️ **Siguiente Paso Recomendado**\n\n"

func advanceStep(topic string) string {
	return nextStepHeader + "¡Vas excelente! 🔥\n\n" +
		"**Sugerencia:** Avanza a conceptos más complejos de " + topic + ". Estás listo para el siguiente nivel."
}

func reviewStep(concept string) string {
	return nextStepHeader + "No te preocupes, el aprendizaje es un proceso. 💪\n\n" +
		"**Sugerencia:** Repasa " + concept + " con un enfoque diferente. Prueba ejercicios prácticos simples antes de avanzar."
}

func practiceMoreStep(topic, concept string) string {
	return nextStepHeader + "¡Buen progreso! 👍\n\n" +
		"**Sugerencia:** Practica " + concept + " con ejemplos reales, luego avanza al siguiente concepto de " + topic + "."
}
