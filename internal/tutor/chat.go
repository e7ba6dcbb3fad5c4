package tutor

import "strings"

// chatRule answers when any trigger appears in the message. Refinements are
// checked first; Answer is used when none of them match.
type chatRule struct {
	Triggers    []string
	Refinements []chatRule
	Answer      string
}

func (r chatRule) match(msg string) (string, bool) {
	if !containsAny(msg, r.Triggers) {
		return "", false
	}
	for _, sub := range r.Refinements {
		if answer, ok := sub.match(msg); ok {
			return answer, true
		}
	}
	return r.Answer, true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// chatRules are checked in order; the first match answers.
var chatRules = []chatRule{
	{
		Triggers: []string{"dame la respuesta", "cuál es la solución", "hazlo por mí"},
		Answer:   "🚫 Mi rol es guiarte, no darte la respuesta. El aprendizaje real viene cuando tú resuelves el problema. ¿Qué has intentado hasta ahora?",
	},
	{
		Triggers: []string{"variable"},
		Refinements: []chatRule{
			{Triggers: []string{"qué es", "que es", "definición"}, Answer: "💡 Una variable es como una caja etiquetada donde guardas información. Por ejemplo:\n\nnombre = \"Ana\"\nedad = 25\n\nLa etiqueta es el nombre (nombre, edad) y el contenido es el valor (\"Ana\", 25).\n\n¿Qué variable necesitas crear para tu ejercicio?"},
			{Triggers: []string{"cómo", "como", "crear"}, Answer: "📝 Para crear una variable:\n\n1. Escribe el nombre\n2. Usa = (signo igual)\n3. Pon el valor\n\nEjemplo: ciudad = \"Lima\"\n\n¿Ya probaste crear una? Muéstrame qué escribiste."},
			{Triggers: []string{"tipo"}, Answer: "🔢 Los tipos de datos más comunes:\n\n• str (texto): nombre = \"Juan\"\n• int (entero): edad = 30\n• float (decimal): altura = 1.75\n• bool (verdadero/falso): activo = True\n\nPython detecta el tipo automáticamente. ¿Qué tipo necesitas para tu ejercicio?"},
		},
		Answer: "Las variables son fundamentales. ¿Qué específicamente te confunde? ¿Cómo crearlas, qué tipos hay, o cómo usarlas?",
	},
	{
		Triggers: []string{"función", "funcion", "def"},
		Refinements: []chatRule{
			{Triggers: []string{"qué es", "que es"}, Answer: "🎯 Una función es código reutilizable. Como una receta:\n\ndef saludar(nombre):\n    print(f\"Hola {nombre}\")\n\nsaludar(\"María\")  # Salida: Hola María\n\n¿Qué tarea repetitiva podrías convertir en función?"},
			{Triggers: []string{"parámetro", "parametro"}, Answer: "📥 Los parámetros son datos que entran a la función:\n\ndef suma(a, b):  # a y b son parámetros\n    return a + b\n\nresultado = suma(5, 3)  # 5 y 3 son argumentos\n\n¿Qué datos necesita recibir tu función?"},
			{Triggers: []string{"return"}, Answer: "↩️ return devuelve un valor de la función:\n\ndef calcular_doble(numero):\n    return numero * 2\n\nresultado = calcular_doble(5)  # resultado = 10\n\nSin return, la función no devuelve nada (None). ¿Tu función debe devolver algo?"},
		},
		Answer: "Las funciones organizan tu código. ¿Qué parte te genera duda? ¿Sintaxis, parámetros o el return?",
	},
	{
		Triggers: []string{"lista", "array"},
		Refinements: []chatRule{
			{Triggers: []string{"crear"}, Answer: "📋 Para crear listas:\n\nfrutas = [\"manzana\", \"pera\", \"uva\"]\nnumeros = [1, 2, 3, 4, 5]\nmixta = [\"texto\", 42, True]\n\nUsa corchetes [] y separa elementos con comas. Intenta crear una lista para tu ejercicio."},
			{Triggers: []string{"acceder", "índice", "posición"}, Answer: "🎯 Para acceder a elementos:\n\nfrutas = [\"manzana\", \"pera\", \"uva\"]\n\nfrutas[0]  # \"manzana\" (primer elemento)\nfrutas[1]  # \"pera\"\nfrutas[-1]  # \"uva\" (último elemento)\n\nRecuerda: los índices empiezan en 0. ¿Qué elemento necesitas obtener?"},
		},
		Answer: "Las listas guardan múltiples valores. ¿Necesitas crearlas, acceder a elementos o modificarlas?",
	},
	{
		Triggers: []string{"bucle", "for", "while", "ciclo"},
		Refinements: []chatRule{
			{Triggers: []string{"diferencia", "cuándo", "cuando"}, Answer: "🔄 for vs while:\n\n• for: sabes cuántas veces repetir\nfor i in range(5):  # Repite 5 veces\n\n• while: repites hasta que algo cambie\nwhile edad < 18:  # Hasta que edad sea 18+\n\n¿Tu tarea tiene un número fijo de repeticiones?"},
			{Triggers: []string{"range"}, Answer: "🔢 range() genera números:\n\nrange(5)  # 0, 1, 2, 3, 4\nrange(1, 6)  # 1, 2, 3, 4, 5\nrange(0, 10, 2)  # 0, 2, 4, 6, 8\n\nSiempre para ANTES del último número. ¿Qué rango necesitas?"},
		},
		Answer: "Los bucles repiten código. ¿Sabes cuántas veces repetir (usa for) o es hasta que algo cambie (usa while)?",
	},
	{
		Triggers: []string{"if", "else", "condicional"},
		Refinements: []chatRule{
			{Triggers: []string{"sintaxis", "cómo", "como"}, Answer: "🤔 Sintaxis de condicionales:\n\nif edad >= 18:\n    print(\"Adulto\")\nelif edad >= 13:\n    print(\"Adolescente\")\nelse:\n    print(\"Niño\")\n\nNota los dos puntos : y la indentación. ¿Qué decisión debe tomar tu código?"},
			{Triggers: []string{"operador", "comparación"}, Answer: "⚖️ Operadores de comparación:\n\n==  igual a\n!=  diferente de\n>   mayor que\n<   menor que\n>=  mayor o igual\n<=  menor o igual\n\nEjemplo: if edad >= 18:\n\n¿Qué condición necesitas verificar?"},
		},
		Answer: "Los condicionales son decisiones: if edad >= 18: haz esto. ¿Qué condición necesitas evaluar?",
	},
	{
		Triggers: []string{"error", "no funciona", "falla"},
		Answer:   "🐛 Los errores son normales y útiles. Para ayudarte mejor:\n\n1. ¿Qué mensaje de error ves exactamente?\n2. ¿En qué línea ocurre?\n3. ¿Qué esperabas que pasara vs qué pasó realmente?\n\nCuéntame estos detalles y te guío.",
	},
	{
		Triggers: []string{"no entiendo", "confundido", "difícil"},
		Answer:   "🤝 Entiendo tu frustración. Vamos paso a paso:\n\n1. ¿Qué parte específica no entiendes?\n2. ¿Es la sintaxis, la lógica o no sabes por dónde empezar?\n3. ¿Ya intentaste algo?\n\nDime en qué paso te trabaste.",
	},
	{
		Triggers: []string{"cómo", "como"},
		Answer:   "💭 Antes de responderte, cuéntame:\n\n¿Qué has intentado hasta ahora? Comparte tu razonamiento y te guío desde ahí. Aprenderás más si construimos la solución juntos.",
	},
	{
		Triggers: []string{"por qué", "porque", "para qué"},
		Answer:   "🎯 Excelente pregunta. Piensa en esto:\n\n¿Dónde usarías este concepto en un proyecto real? Eso te ayudará a entender el 'por qué'. Dame un ejemplo y exploramos juntos.",
	},
	{
		Triggers: []string{"ejemplo", "muestra"},
		Answer:   "📚 En vez de darte el ejemplo completo, construyámoslo juntos:\n\n1. ¿Qué es lo primero que escribirías?\n2. Comparte tu idea y yo te digo si vas bien\n\nEl mejor aprendizaje viene cuando TÚ lo construyes.",
	},
	{
		Triggers: []string{"está bien", "correcto", "funciona"},
		Answer:   "✅ Antes de decirte sí o no, ayúdame a entender:\n\n¿Por qué crees que funciona? ¿Qué hace cada parte de tu código?\n\nExplicar tu razonamiento fortalece tu comprensión.",
	},
}

// lessonRules match against the subject part of the lesson id.
var lessonRules = []chatRule{
	{
		Triggers: []string{"variable"},
		Answer:   "Esta lección es sobre variables. Las claves son:\n\n1. Nombre descriptivo\n2. Asignar valor con =\n3. Usar la variable después\n\n¿En qué parte específica necesitas ayuda?",
	},
	{
		Triggers: []string{"function"},
		Answer:   "Esta lección es sobre funciones. Recuerda:\n\n1. def nombre_funcion():\n2. Indenta el código interno\n3. Llama con nombre_funcion()\n\n¿Qué paso te está costando?",
	},
}

const followUpReply = "📝 Veo que sigues trabajando en esto. ¿Ya probaste lo que te sugerí en el mensaje anterior?\n\nCuéntame qué resultado obtuviste o qué nueva duda surgió."

var defaultReplies = []string{
	"🤔 Para ayudarte mejor, necesito saber: ¿en qué paso específico te trabaste?\n\nComparte tu código o describe el problema.",
	"💡 Hagamos esto paso a paso:\n\n1. Muéstrame lo que has escrito hasta ahora\n2. Te doy feedback específico\n3. Avanzamos juntos\n\n¿Qué tienes hasta el momento?",
	"🎯 Buena pregunta. Antes de responderte:\n\n¿Qué información ya tienes clara y qué te falta? Así puedo enfocarme en lo que realmente necesitas.",
	"📖 Descompongamos esto juntos:\n\n¿Cuál es el objetivo final de lo que intentas hacer? A veces empezar por el 'qué quiero lograr' aclara el 'cómo hacerlo'.",
}

// Reply answers a learner's chat message without giving solutions away.
// lessonID is the lesson being studied, if any. messages counts the
// learner's messages so far, this one included.
func (t *Tutor) Reply(message, lessonID string, messages int) string {
	msg := strings.ToLower(message)

	for _, r := range chatRules {
		if answer, ok := r.match(msg); ok {
			return answer
		}
	}

	subject := lessonSubject(lessonID)
	for _, r := range lessonRules {
		if answer, ok := r.match(subject); ok {
			return answer
		}
	}

	if messages >= 3 {
		return followUpReply
	}
	return t.pick(defaultReplies)
}

// lessonSubject returns the second dash-separated part of a lesson id,
// e.g. "variables" for "py-variables-1".
func lessonSubject(lessonID string) string {
	parts := strings.Split(lessonID, "-")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
