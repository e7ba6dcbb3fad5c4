package evaluation

// GenericTopic names the rubric used for topics without their own.
const GenericTopic = "generic"

var pythonRubric = Rubric{
	Topic: "python",
	Focus: " variables, tipos de datos y sintaxis.",
	Concepts: []Concept{
		{
			Name: "Variables",
			Rules: []Rule{
				{All: []string{"asigna", "valor"}, Score: 10, Status: StatusCorrect,
					Feedback: "Excelente: Entiendes que las variables almacenan valores mediante asignación."},
				{Any: []string{"variable", "asigna"}, Score: 5, Status: StatusPartial,
					Feedback: "Parcial: Mencionas variables pero falta explicar cómo se asignan valores."},
				{Score: 0, Status: StatusIncorrect,
					Feedback: "Incorrecto: No mencionaste cómo funcionan las variables."},
			},
		},
		{
			Name: "Tipos de datos",
			Rules: []Rule{
				{All: []string{"int", "str", "float"}, Credits: typeCredits, Status: StatusCorrect,
					Feedback: "Excelente: Identificas correctamente int, str y float."},
				{Any: []string{"int", "str", "float", "tipo"}, Credits: typeCredits, Status: StatusPartial,
					Feedback: "Parcial: Conoces algunos tipos de datos pero no todos los fundamentales."},
				{Score: 0, Status: StatusIncorrect,
					Feedback: "Incorrecto: No mencionaste los tipos de datos básicos."},
			},
		},
		{
			Name: "Sintaxis",
			Rules: []Rule{
				{Any: []string{"=", "sintaxis"}, Score: 10, Status: StatusCorrect,
					Feedback: "Correcto: Comprendes la sintaxis básica de asignación."},
				{Score: 0, Status: StatusIncorrect,
					Feedback: "Incorrecto: No explicaste la sintaxis correctamente."},
			},
		},
	},
}

var typeCredits = []Credit{
	{Trigger: "int", Points: 3},
	{Trigger: "str", Points: 3},
	{Trigger: "float", Points: 4},
}

var excelRubric = Rubric{
	Topic: "excel",
	Focus: " fórmulas, funciones y referencias de celdas.",
	Concepts: []Concept{
		{
			Name: "Fórmulas",
			Rules: []Rule{
				{Any: []string{"formula", "="}, Score: 10, Status: StatusCorrect,
					Feedback: "Correcto: Entiendes que las fórmulas inician con ="},
				{Score: 0, Status: StatusIncorrect,
					Feedback: "Incorrecto: No explicaste cómo funcionan las fórmulas."},
			},
		},
		{
			Name: "Funciones básicas",
			Rules: []Rule{
				{Any: []string{"suma", "promedio", "max"}, Score: 10, Status: StatusCorrect,
					Feedback: "Correcto: Conoces funciones fundamentales como SUMA, PROMEDIO o MAX."},
				{Score: 5, Status: StatusPartial,
					Feedback: "Parcial: Deberías mencionar funciones como SUMA, PROMEDIO o MAX."},
			},
		},
		{
			Name: "Referencias de celdas",
			Rules: []Rule{
				{Any: []string{"celda", "referencia", "a1"}, Score: 10, Status: StatusCorrect,
					Feedback: "Correcto: Comprendes el sistema de referencias."},
				{Score: 0, Status: StatusIncorrect,
					Feedback: "Incorrecto: No explicaste cómo referenciar celdas."},
			},
		},
	},
}

// genericRubric grades by answer length alone, on a 15 point scale.
var genericRubric = Rubric{
	Topic: GenericTopic,
	Focus: " tu comprensión general del tema.",
	Concepts: []Concept{
		{
			Name:     "Comprensión general",
			MaxScore: 15,
			Rules: []Rule{
				{MinLength: 100, Score: 15, Status: StatusCorrect, Feedback: "Bien: Respuesta detallada."},
				{MinLength: 50, Score: 10, Status: StatusPartial, Feedback: "Parcial: Respuesta algo breve."},
				{Score: 5, Status: StatusIncorrect, Feedback: "Insuficiente: Respuesta muy corta."},
			},
		},
	},
}

// BuiltinRubrics returns the rubrics shipped with the binary.
func BuiltinRubrics() []Rubric {
	return []Rubric{pythonRubric, excelRubric, genericRubric}
}
