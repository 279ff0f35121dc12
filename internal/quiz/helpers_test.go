package quiz

import "testing"

func testAreas() []Area {
	return []Area{
		{Tag: "ingenieria", Name: "Ingeniería y Tecnología", Icon: "⚙️"},
		{Tag: "ciencias", Name: "Ciencias Básicas", Icon: "🔬"},
		{Tag: "artes", Name: "Artes y Humanidades", Icon: "🎨"},
		{Tag: "diseño", Name: "Diseño y Comunicación", Icon: "✏️"},
		{Tag: "salud", Name: "Ciencias de la Salud", Icon: "🏥"},
		{Tag: "educacion", Name: "Educación y Pedagogía", Icon: "📖"},
		{Tag: "administracion", Name: "Administración y Negocios", Icon: "📊"},
		{Tag: "derecho", Name: "Derecho y Ciencias Políticas", Icon: "⚖️"},
	}
}

func opt(label string, tags ...string) Option {
	return Option{Label: label, Tags: tags}
}

func testQuestions() []Question {
	return []Question{
		{Prompt: "Actividades", Options: []Option{
			opt("Problemas lógicos", "ingenieria", "ciencias"),
			opt("Contenido artístico", "artes", "diseño"),
			opt("Ayudar a otros", "salud", "educacion"),
			opt("Investigar", "ciencias", "derecho"),
		}},
		{Prompt: "Entorno", Options: []Option{
			opt("Laboratorio", "ingenieria", "ciencias"),
			opt("Estudio creativo", "artes", "diseño"),
			opt("Hospital o escuela", "salud", "educacion"),
			opt("Oficina", "administracion", "derecho"),
		}},
		{Prompt: "Fortaleza", Options: []Option{
			opt("Pensamiento analítico", "ingenieria", "ciencias"),
			opt("Creatividad", "artes", "diseño"),
			opt("Empatía", "salud", "educacion"),
			opt("Liderazgo", "administracion", "derecho"),
		}},
		{Prompt: "Impacto", Options: []Option{
			opt("Innovación tecnológica", "ingenieria"),
			opt("Transformación cultural", "artes", "diseño"),
			opt("Bienestar social", "salud", "educacion"),
			opt("Justicia", "administracion", "derecho"),
		}},
		{Prompt: "Materia", Options: []Option{
			opt("Matemáticas", "ingenieria", "ciencias"),
			opt("Arte", "artes"),
			opt("Biología", "salud", "ciencias"),
			opt("Historia", "derecho", "educacion"),
		}},
	}
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(testQuestions(), testAreas())
	if err != nil {
		t.Fatalf("build test catalog: %v", err)
	}
	return c
}

func answerAll(t *testing.T, e *Engine, picks ...int) {
	t.Helper()
	for _, p := range picks {
		if err := e.Answer(p); err != nil {
			t.Fatalf("Answer(%d) at position %d: %v", p, e.Position(), err)
		}
	}
}
