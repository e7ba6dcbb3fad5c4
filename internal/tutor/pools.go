package tutor

import "github.com/abhisek/ailearn/internal/profile"

// responses holds the canned feedback per step and tier.
var responses = map[Step]map[Tier][]string{
	StepPractice: {
		TierExcellent: {
			"¡Excelente trabajo! Tu ejemplo demuestra una comprensión sólida del concepto. Sigue así.",
			"Muy bien pensado. Has aplicado el concepto de manera práctica y clara. Continúa con este nivel.",
			"Perfecto. Tu respuesta muestra que has entendido cómo usar esto en situaciones reales.",
		},
		TierGood: {
			"Buen intento. Veo que entiendes la idea principal. Intenta agregar más detalles en tu próxima práctica.",
			"Vas por buen camino. Con un poco más de profundidad, tu respuesta sería excelente.",
			"Bien hecho. Tu respuesta es correcta, aunque podrías expandir el ejemplo un poco más.",
		},
		TierNeedsWork: {
			"Veo tu esfuerzo. Intenta relacionar el concepto más directamente con un ejemplo específico.",
			"Buen inicio, pero necesitas desarrollar más la idea. ¿Puedes pensar en un caso concreto?",
			"Aprecio tu intento. Revisemos juntos: ¿cómo aplicarías esto paso a paso?",
		},
	},
	StepComprehension: {
		TierExcellent: {
			"¡Exacto! Has capturado la esencia del concepto perfectamente.",
			"Muy bien. Tu síntesis demuestra comprensión clara y precisa.",
			"Perfecto. Has identificado lo más importante correctamente.",
		},
		TierGood: {
			"Correcto. Has entendido el punto clave, aunque hay más matices que explorar.",
			"Bien visto. Tu respuesta está en el camino correcto.",
			"Sí, eso es importante. También considera otros aspectos que vimos.",
		},
		TierNeedsWork: {
			"Entiendo tu perspectiva. El concepto clave es un poco diferente, revisémoslo.",
			"Buen intento. Hay un aspecto fundamental que quizás pasaste por alto.",
			"Vamos a aclarar esto juntos. El punto principal es...",
		},
	},
	StepReflection: {
		TierExcellent: {
			"Excelente reflexión. La metacognición es clave para el aprendizaje profundo. Sigue así.",
			"Me gusta tu honestidad y análisis. Esta autoconciencia te ayudará a mejorar continuamente.",
			"Muy bien expresado. Reconocer lo que fue difícil es el primer paso para dominarlo.",
		},
		TierGood: {
			"Buena reflexión. Ser consciente de tu proceso de aprendizaje te hace más efectivo.",
			"Aprecio tu sinceridad. Estas observaciones son valiosas para tu progreso.",
			"Bien pensado. Tu reflexión muestra compromiso con tu aprendizaje.",
		},
		TierNeedsWork: {
			"Gracias por compartir. Intenta profundizar más en qué específicamente fue desafiante o fácil.",
			"Buen inicio. ¿Podrías elaborar más sobre tu experiencia?",
			"Valoro tu reflexión. Considera ser más específico sobre lo que aprendiste.",
		},
	},
	StepFinal: {
		TierExcellent: {
			"¡Felicitaciones! Has completado esta micro-lección con excelencia. Tu dedicación es notable.",
			"Trabajo excepcional. Has demostrado comprensión profunda y aplicación práctica del concepto.",
			"¡Impresionante! Tu desempeño muestra que dominas este tema. Sigue con este momentum.",
		},
		TierGood: {
			"¡Bien hecho! Has completado la lección satisfactoriamente. Cada sesión te acerca más al dominio.",
			"Buen trabajo. Has progresado consistentemente y demuestras comprensión sólida.",
			"¡Logrado! Tu esfuerzo ha dado frutos. Continúa practicando para consolidar el aprendizaje.",
		},
		TierNeedsWork: {
			"¡Completado! Aunque encontraste algunos desafíos, lo importante es que perseveraste. Sigue adelante.",
			"Bien por terminar. Cada intento te acerca al dominio. Considera revisar los puntos difíciles.",
			"¡Lo lograste! El aprendizaje es un proceso. Continúa practicando y verás mejoras rápidas.",
		},
	},
}

// encouragement is appended to every feedback line, keyed by mental state.
var encouragement = map[profile.MentalState][]string{
	profile.StateTired: {
		" Descansa cuando lo necesites.",
		" No te presiones demasiado hoy.",
		" Tu cerebro necesita tiempo para consolidar.",
	},
	profile.StateMotivated: {
		" Tu energía es contagiosa.",
		" ¿Listo para otro desafío?",
		" Tu motivación te llevará lejos.",
	},
	profile.StateNeutral: {
		" Vas bien.",
		" Continúa así.",
		" Paso a paso.",
	},
}

// mainMessages take the lesson topic as their only argument.
var mainMessages = map[Performance][]string{
	PerformanceExcellent: {
		"¡Felicitaciones! Has demostrado un dominio excepcional del tema \"%s\". Tu capacidad para aplicar conceptos y reflexionar sobre tu aprendizaje es sobresaliente.",
		"¡Trabajo extraordinario! Tu comprensión de \"%s\" está a un nivel avanzado. Has conectado las ideas de manera efectiva y demostrado pensamiento crítico.",
		"¡Impresionante desempeño! No solo has comprendido \"%s\", sino que has demostrado la capacidad de aplicarlo creativamente. Tu dedicación es inspiradora.",
	},
	PerformanceGood: {
		"¡Muy buen trabajo! Has logrado una comprensión sólida de \"%s\". Tus respuestas muestran esfuerzo genuino y capacidad de análisis.",
		"¡Bien hecho! Has avanzado significativamente en tu comprensión de \"%s\". Tu progreso es notable y consistente.",
		"¡Excelente progreso! Has demostrado buena comprensión de \"%s\". Con un poco más de práctica, alcanzarás la maestría.",
	},
	PerformanceInProgress: {
		"¡Has completado la lección! Aunque \"%s\" presentó algunos desafíos, tu perseverancia es admirable. Cada intento fortalece tu comprensión.",
		"¡Bien por terminar! \"%s\" puede ser complejo, pero has dado los primeros pasos importantes. El aprendizaje es un viaje, no un destino.",
		"¡Logrado! Has enfrentado los desafíos de \"%s\" con determinación. Recuerda que el error es parte esencial del proceso de aprendizaje.",
	},
}

var strengthPool = map[Performance][]string{
	PerformanceExcellent: {
		"Aplicaste los conceptos de manera práctica y relevante",
		"Demostraste pensamiento crítico en tus respuestas",
		"Tu reflexión metacognitiva fue profunda y honesta",
		"Conectaste las ideas nuevas con conocimientos previos",
		"Mantuviste un alto nivel de compromiso durante toda la lección",
	},
	PerformanceGood: {
		"Mostraste esfuerzo consistente en todas las actividades",
		"Tus ejemplos fueron claros y relevantes",
		"Identificaste correctamente los conceptos principales",
		"Mantuviste una buena actitud de aprendizaje",
		"Tu reflexión final mostró autoconciencia valiosa",
	},
	PerformanceInProgress: {
		"Completaste todas las actividades con perseverancia",
		"Mostraste disposición para enfrentar desafíos",
		"Tu honestidad en las reflexiones es un activo valioso",
		"Mantuviste el compromiso hasta el final",
		"Demostraste apertura para aprender de los errores",
	},
}

var improvementPool = map[Performance][]string{
	PerformanceExcellent: {
		"Podrías explorar aplicaciones aún más avanzadas del concepto",
		"Considera enseñar estos conceptos a otros para profundizar tu comprensión",
		"Experimenta con casos de uso más complejos y multidimensionales",
	},
	PerformanceGood: {
		"Intenta profundizar más en los ejemplos prácticos",
		"Dedica más tiempo a conectar conceptos con tu experiencia personal",
		"Busca oportunidades adicionales de práctica para consolidar el aprendizaje",
	},
	PerformanceInProgress: {
		"Revisa los conceptos fundamentales que presentaron mayor dificultad",
		"Practica con ejercicios similares para fortalecer la comprensión",
		"No dudes en volver a repasar el material cuando lo necesites",
		"Considera dividir el tema en partes más pequeñas para facilitar la asimilación",
	},
}

const (
	nextStepsVisual      = "Para continuar tu progreso, te recomiendo explorar diagramas y mapas conceptuales sobre este tema. Tu estilo visual se beneficiará de representaciones gráficas."
	nextStepsAuditory    = "Sigue adelante grabando tus propias explicaciones del tema o discutiéndolo con otros. Tu estilo auditivo se fortalece con el diálogo."
	nextStepsKinesthetic = "Da el siguiente paso con proyectos prácticos donde puedas aplicar estos conceptos. Tu estilo kinestésico necesita experiencia directa."
	nextStepsReading     = "Continúa tu camino leyendo artículos avanzados y documentación sobre el tema. Tu estilo lector se beneficia de recursos textuales profundos."
)

var motivationalQuotes = []string{
	"\"El aprendizaje es un tesoro que seguirá a su dueño a todas partes.\" - Proverbio chino",
	"\"La educación es el arma más poderosa que puedes usar para cambiar el mundo.\" - Nelson Mandela",
	"\"El conocimiento es poder. La información es liberadora.\" - Kofi Annan",
	"\"Aprende como si fueras a vivir para siempre.\" - Mahatma Gandhi",
	"\"La inversión en conocimiento paga el mejor interés.\" - Benjamin Franklin",
	"\"El que abre una puerta de una escuela, cierra una prisión.\" - Victor Hugo",
}
