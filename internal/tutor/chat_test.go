package tutor

import (
	"slices"
	"strings"
	"testing"
)

func TestReply(t *testing.T) {
	tut := New(NewSeededSource(1))

	tests := []struct {
		name     string
		message  string
		lessonID string
		messages int
		prefix   string
	}{
		{"refuses direct answers", "Dame la respuesta por favor", "", 1, "🚫 Mi rol es guiarte"},
		{"refusal beats topic", "hazlo por mí, es una variable", "", 1, "🚫"},
		{"variable definition", "¿Qué es una variable?", "", 1, "💡 Una variable es como una caja"},
		{"variable creation", "como creo una variable", "", 1, "📝 Para crear una variable"},
		{"variable types", "tipos de variable", "", 1, "🔢 Los tipos de datos"},
		{"variable generic", "variables!!", "", 1, "Las variables son fundamentales"},
		{"function params", "no sé usar el parametro de la funcion", "", 1, "📥 Los parámetros"},
		{"function return", "para que sirve return en una función", "", 1, "↩️ return devuelve"},
		{"list access", "como acceder a una lista", "", 1, "🎯 Para acceder a elementos"},
		{"loop difference", "diferencia entre bucle while y el otro", "", 1, "🔄 for vs while"},
		{"loop range", "uso de range en un ciclo", "", 1, "🔢 range() genera números"},
		{"conditional syntax", "sintaxis del else", "", 1, "🤔 Sintaxis de condicionales"},
		{"errors", "me sale un error raro", "", 1, "🐛 Los errores son normales"},
		{"confusion", "no entiendo nada", "", 1, "🤝 Entiendo tu frustración"},
		{"how", "¿cómo empiezo?", "", 1, "💭 Antes de responderte"},
		{"why", "¿por qué es así?", "", 1, "🎯 Excelente pregunta"},
		{"example", "muéstrame un ejemplo", "", 1, "📚 En vez de darte el ejemplo"},
		{"verification", "¿está bien lo que hice?", "", 1, "✅ Antes de decirte sí o no"},
		{"lesson guidance", "ayuda", "py-variables-1", 1, "Esta lección es sobre variables"},
		{"lesson guidance functions", "ayuda", "py-functions-1", 1, "Esta lección es sobre funciones"},
		{"follow up", "ayuda", "", 3, "📝 Veo que sigues trabajando"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tut.Reply(tt.message, tt.lessonID, tt.messages)
			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("Reply(%q) = %q, want prefix %q", tt.message, got, tt.prefix)
			}
		})
	}
}

func TestReplyDefaultPool(t *testing.T) {
	tut := New(NewSeededSource(5))
	for range 20 {
		got := tut.Reply("hola", "", 1)
		if !slices.Contains(defaultReplies, got) {
			t.Errorf("Reply(hola) = %q, not a default reply", got)
		}
	}
}

func TestLessonSubject(t *testing.T) {
	tests := map[string]string{
		"py-variables-1": "variables",
		"linux-intro-1":  "intro",
		"single":         "",
		"":               "",
	}
	for in, want := range tests {
		if got := lessonSubject(in); got != want {
			t.Errorf("lessonSubject(%q) = %q, want %q", in, got, want)
		}
	}
}
