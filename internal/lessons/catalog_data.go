package lessons

func seedTopics() []Topic {
	return []Topic{
		{ID: "python", Name: "Python", Category: CategoryTech},
		{ID: "linux", Name: "Linux", Category: CategoryTech},
		{ID: "javascript", Name: "JavaScript", Category: CategoryTech},
		{ID: "excel", Name: "Excel", Category: CategoryBusiness},
		{ID: "finance", Name: "Finanzas personales", Category: CategoryBusiness},
		{ID: "marketing", Name: "Marketing digital", Category: CategoryBusiness},
	}
}

func seedLessons() []CatalogLesson {
	return []CatalogLesson{
		// Python
		{ID: "py-variables-1", Topic: "python", Title: "Variables en Python", Concept: "Variables", Order: 1, Minutes: 5, Material: &pyVariables1},
		{ID: "py-variables-2", Topic: "python", Title: "Tipos de datos", Concept: "Tipos de datos", Order: 2, Minutes: 6, Material: &pyVariables2},
		{ID: "py-functions-1", Topic: "python", Title: "Funciones", Concept: "Funciones", Order: 3, Minutes: 7, Material: &pyFunctions1},
		{ID: "py-lists-1", Topic: "python", Title: "Listas", Concept: "Listas", Order: 4, Minutes: 6},
		{ID: "py-loops-1", Topic: "python", Title: "Bucles for y while", Concept: "Bucles", Order: 5, Minutes: 7},
		{ID: "py-conditionals-1", Topic: "python", Title: "Condicionales", Concept: "Condicionales", Order: 6, Minutes: 6},
		{ID: "py-dicts-1", Topic: "python", Title: "Diccionarios", Concept: "Diccionarios", Order: 7, Minutes: 7},

		// Linux
		{ID: "linux-intro-1", Topic: "linux", Title: "Navegación en la terminal", Concept: "Comandos básicos", Order: 1, Minutes: 5, Material: &linuxIntro1},
		{ID: "linux-files-1", Topic: "linux", Title: "Archivos y permisos", Concept: "Permisos", Order: 2, Minutes: 6},

		// JavaScript
		{ID: "js-basics-1", Topic: "javascript", Title: "Variables en JavaScript", Concept: "Variables", Order: 1, Minutes: 5, Material: &jsBasics1},
		{ID: "js-functions-1", Topic: "javascript", Title: "Funciones flecha", Concept: "Funciones", Order: 2, Minutes: 6},

		// Excel
		{ID: "excel-intro-1", Topic: "excel", Title: "Introducción a Excel", Concept: "Fórmulas", Order: 1, Minutes: 5, Material: &excelIntro1},
		{ID: "excel-functions-1", Topic: "excel", Title: "Funciones básicas", Concept: "Funciones", Order: 2, Minutes: 6},

		// Finance
		{ID: "fin-budget-1", Topic: "finance", Title: "Presupuesto personal", Concept: "Presupuesto", Order: 1, Minutes: 5, Material: &finBudget1},
		{ID: "fin-savings-1", Topic: "finance", Title: "Fondo de emergencia", Concept: "Ahorro", Order: 2, Minutes: 5},

		// Marketing
		{ID: "mkt-intro-1", Topic: "marketing", Title: "Fundamentos de marketing digital", Concept: "Canales digitales", Order: 1, Minutes: 6, Material: &mktIntro1},
		{ID: "mkt-social-1", Topic: "marketing", Title: "Estrategia en redes sociales", Concept: "Redes sociales", Order: 2, Minutes: 6},
	}
}

var pyVariables1 = Material{
	Introduction: "Las variables son contenedores que almacenan datos en tu programa. Piensa en ellas como cajas etiquetadas donde guardas información que puedes usar y modificar más tarde.",
	Explanation:  "En Python, crear una variable es muy simple. Solo necesitas un nombre y un valor. Por ejemplo:\n\nPython usa tipado dinámico, lo que significa que no necesitas declarar el tipo de dato. Python lo detecta automáticamente.",
	CodeExample: `# Crear variables en Python
nombre = "Juan"
edad = 25
altura = 1.75
es_estudiante = True

# Mostrar los valores
print(nombre)
print(edad)`,
	Exercise: Exercise{
		Title:       "Crea tus primeras variables",
		Description: "Crea 3 variables: tu nombre, tu edad y tu ciudad. Luego imprímelas usando print().",
		Placeholder: "nombre = \"Tu nombre\"\nedad = \nciudad = \n\nprint(nombre)\nprint(edad)\nprint(ciudad)",
		Keywords:    []string{"nombre", "edad", "ciudad", "print", "="},
	},
	Summary: "Las variables son la base de la programación. Usa nombres descriptivos, puedes guardar diferentes tipos de datos (texto, números, booleanos), y Python detecta el tipo automáticamente.",
}

var pyVariables2 = Material{
	Introduction: "Ahora que sabes crear variables, aprenderás sobre los diferentes tipos de datos y cómo convertir entre ellos. Esto es crucial para manipular información correctamente.",
	Explanation:  "Python tiene varios tipos de datos principales: str (texto), int (enteros), float (decimales), bool (verdadero/falso). Puedes convertir entre tipos usando funciones de conversión.",
	CodeExample: `# Tipos de datos
texto = "123"
numero = int(texto)  # Convierte texto a número
decimal = float(numero)  # Convierte a decimal

# Ver el tipo
print(type(texto))   # <class 'str'>
print(type(numero))  # <class 'int'>

# Conversiones útiles
edad_texto = "25"
edad_numero = int(edad_texto)
print(edad_numero + 5)  # 30`,
	Exercise: Exercise{
		Title:       "Practica conversiones de tipos",
		Description: "Crea una variable con el texto \"100\", conviértela a número, súmale 50, y muestra el resultado.",
		Placeholder: "texto_numero = \"100\"\n# Convierte a int y suma 50\n# Imprime el resultado",
		Keywords:    []string{"int", "+", "print", "="},
	},
	Summary: "Los tipos de datos definen qué puedes hacer con una variable. Usa int() para enteros, float() para decimales, str() para texto. Las conversiones son esenciales para evitar errores.",
}

var pyFunctions1 = Material{
	Introduction: "Las funciones son bloques de código reutilizables que realizan una tarea específica. Son como recetas que puedes seguir una y otra vez sin reescribir todo.",
	Explanation:  "Una función se define con la palabra 'def', seguida del nombre y paréntesis. El código dentro se ejecuta cada vez que llamas la función.",
	CodeExample: `# Definir una función
def saludar():
    print("¡Hola!")
    print("Bienvenido al curso")

# Llamar la función
saludar()  # Ejecuta el código dentro

# Función con parámetros
def saludar_persona(nombre):
    print(f"Hola {nombre}")

saludar_persona("Ana")  # Hola Ana`,
	Exercise: Exercise{
		Title:       "Crea tu primera función",
		Description: "Define una función llamada 'presentarse' que imprima tu nombre y tu edad. Luego llámala.",
		Placeholder: "def presentarse():\n    # Tu código aquí\n    print(...)\n\n# Llama tu función\npresentarse()",
		Keywords:    []string{"def", "presentarse", "print", "()"},
	},
	Summary: "Las funciones organizan tu código y lo hacen reutilizable. Usa 'def' para definir, indenta el código interno, y llama la función con paréntesis.",
}

var linuxIntro1 = Material{
	Introduction: "Linux es un sistema operativo poderoso usado en servidores, desarrollo y más. Aprenderás a navegar usando la terminal, que es más rápida y potente que interfaces gráficas.",
	Explanation:  "La terminal usa comandos de texto para interactuar con el sistema. Los comandos más básicos te permiten ver archivos, cambiar de carpeta y crear directorios.",
	CodeExample: `# Comandos básicos de Linux
pwd           # Muestra tu ubicación actual
ls            # Lista archivos y carpetas
cd carpeta    # Cambia a una carpeta
cd ..         # Sube un nivel
mkdir nueva   # Crea carpeta
touch archivo.txt  # Crea archivo vacío`,
	Exercise: Exercise{
		Title:       "Practica comandos básicos",
		Description: "Escribe los comandos para: 1) Ver dónde estás (pwd), 2) Listar archivos (ls), 3) Crear una carpeta llamada 'proyecto'",
		Placeholder: "pwd\n# Agrega los otros comandos aquí",
		Keywords:    []string{"pwd", "ls", "mkdir", "proyecto"},
	},
	Summary: "La terminal de Linux es tu herramienta principal. pwd muestra ubicación, ls lista archivos, cd cambia carpetas, mkdir crea directorios. Practica estos comandos hasta que sean naturales.",
}

var jsBasics1 = Material{
	Introduction: "JavaScript es el lenguaje de la web. Permite crear páginas interactivas y aplicaciones completas. Empezarás con variables y tipos de datos, similares a Python pero con algunas diferencias.",
	Explanation:  "En JavaScript, declaras variables con let (cambiables) o const (constantes). A diferencia de Python, necesitas usar punto y coma al final de cada línea (opcional pero recomendado).",
	CodeExample: `// Variables en JavaScript
let nombre = "María";
let edad = 28;
const PI = 3.14159;  // Constante, no cambia

// Tipos de datos
let texto = "Hola";
let numero = 42;
let decimal = 3.14;
let activo = true;

// Mostrar en consola
console.log(nombre);
console.log("Edad:", edad);`,
	Exercise: Exercise{
		Title:       "Variables en JavaScript",
		Description: "Crea 2 variables con let (tu nombre y edad) y 1 constante (tu país). Imprímelas con console.log",
		Placeholder: "let nombre = \"Tu nombre\";\n// Crea las otras variables\n\nconsole.log(nombre);\n// Imprime las demás",
		Keywords:    []string{"let", "const", "console.log", "=", ";"},
	},
	Summary: "JavaScript usa let para variables que cambian y const para constantes. Usa console.log() para ver valores. Los punto y coma son opcionales pero buena práctica.",
}

var excelIntro1 = Material{
	Introduction: "Excel es la herramienta de hojas de cálculo más usada en el mundo. Aprenderás a organizar datos, hacer cálculos básicos y dar formato profesional.",
	Explanation:  "Excel organiza datos en filas (numeradas) y columnas (letras). Cada celda tiene una dirección como A1, B2, etc. Las fórmulas siempre empiezan con el signo =",
	CodeExample: `Conceptos básicos de Excel:

Celdas: A1, B3, C5 (columna + fila)
Filas: 1, 2, 3, 4... (horizontales)
Columnas: A, B, C, D... (verticales)

Fórmulas básicas:
=A1+B1     (Suma dos celdas)
=SUMA(A1:A10)  (Suma rango)
=PROMEDIO(B1:B5)  (Calcula promedio)`,
	Exercise: Exercise{
		Title:       "Conceptos de Excel",
		Description: "Escribe la fórmula que sumaría las celdas A1, A2 y A3. Recuerda: las fórmulas empiezan con =",
		Placeholder: "=",
		Keywords:    []string{"=", "SUMA", "A1", "A2", "A3", "+"},
	},
	Summary: "Excel usa celdas identificadas por columna y fila. Las fórmulas empiezan con =. Usa SUMA() para sumar rangos y operadores básicos (+, -, *, /) para cálculos simples.",
}

var finBudget1 = Material{
	Introduction: "Un presupuesto personal es la base de la salud financiera. Aprenderás a rastrear ingresos, gastos y encontrar oportunidades para ahorrar.",
	Explanation:  "Un presupuesto tiene tres partes: Ingresos (dinero que entra), Gastos fijos (renta, servicios) y Gastos variables (comida, entretenimiento). La regla 50/30/20 es un buen punto de partida.",
	CodeExample: `Regla del 50/30/20:

50% - Necesidades (renta, comida, transporte)
30% - Deseos (entretenimiento, hobbies)
20% - Ahorros e inversión

Ejemplo con $2000 mensuales:
$1000 - Necesidades
$600  - Deseos
$400  - Ahorros`,
	Exercise: Exercise{
		Title:       "Calcula tu presupuesto",
		Description: "Si ganas $3000 al mes, calcula cuánto deberías destinar a cada categoría según la regla 50/30/20.",
		Placeholder: "Necesidades (50%): $\nDeseos (30%): $\nAhorros (20%): $",
		Keywords:    []string{"1500", "900", "600", "50", "30", "20"},
	},
	Summary: "La regla 50/30/20 divide tu ingreso en necesidades, deseos y ahorros. Rastrea tus gastos durante un mes para saber dónde va tu dinero. El ahorro debe ser automático, no lo que sobra.",
}

var mktIntro1 = Material{
	Introduction: "El marketing digital usa canales online para llegar a clientes. Aprenderás los fundamentos: contenido, redes sociales, email y publicidad pagada.",
	Explanation:  "El marketing digital tiene 4 pilares principales: SEO (aparecer en Google), redes sociales (engagement), email marketing (comunicación directa) y ads pagados (alcance rápido).",
	CodeExample: `Los 4 pilares del Marketing Digital:

1. SEO (Search Engine Optimization)
   - Aparecer en resultados de Google
   - Contenido optimizado con palabras clave

2. Redes Sociales
   - Instagram, Facebook, TikTok, LinkedIn
   - Engagement y comunidad

3. Email Marketing
   - Comunicación directa con clientes
   - Alta conversión

4. Publicidad Pagada (Ads)
   - Google Ads, Facebook Ads
   - Resultados rápidos`,
	Exercise: Exercise{
		Title:       "Identifica el canal correcto",
		Description: "Si tienes un negocio B2B (empresa a empresa), ¿qué red social sería mejor: Instagram, TikTok o LinkedIn? Explica por qué.",
		Placeholder: "Respuesta: \nRazón: ",
		Keywords:    []string{"LinkedIn", "profesional", "empresas", "B2B"},
	},
	Summary: "El marketing digital combina múltiples canales. SEO es largo plazo pero gratis, redes sociales crean comunidad, email tiene alta conversión, y ads dan resultados inmediatos pero cuestan dinero.",
}
