package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/orienta/internal/content"
	"github.com/abhisek/orienta/internal/quiz"
	"github.com/abhisek/orienta/internal/session"
)

func newLineSession(t *testing.T) *session.Session {
	t.Helper()
	c, err := content.Default()
	require.NoError(t, err)
	return session.New(context.Background(), quiz.NewEngine(c.Catalog), nil)
}

func TestPlayLinesCompletes(t *testing.T) {
	sess := newLineSession(t)
	var out bytes.Buffer

	err := playLines(context.Background(), strings.NewReader("1\n1\n1\n1\n1\nn\n"), &out, sess)
	require.NoError(t, err)

	assert.True(t, sess.Engine().IsComplete())
	assert.Contains(t, out.String(), "Pregunta 5 de 5")
	assert.Contains(t, out.String(), "#1 ⚙️ Ingeniería y Tecnología")
	assert.Contains(t, out.String(), "5/5")
	assert.Contains(t, out.String(), "#2 🔬 Ciencias Básicas")
	assert.NotContains(t, out.String(), "#3")
}

func TestPlayLinesBackAndInvalid(t *testing.T) {
	sess := newLineSession(t)
	var out bytes.Buffer

	input := "b\n9\nfoo\n2\nb\nq\n"
	err := playLines(context.Background(), strings.NewReader(input), &out, sess)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Ya estás en la primera pregunta.")
	assert.Contains(t, out.String(), "Esa opción no existe.")
	assert.Contains(t, out.String(), `Respuesta no válida: "foo"`)
	assert.Equal(t, 0, sess.Engine().Position())
	assert.Empty(t, sess.Engine().Trail())
}

func TestPlayLinesRetry(t *testing.T) {
	sess := newLineSession(t)
	first := sess.AttemptID()
	var out bytes.Buffer

	input := "1\n1\n1\n1\n1\ns\n2\nq\n"
	err := playLines(context.Background(), strings.NewReader(input), &out, sess)
	require.NoError(t, err)

	assert.NotEqual(t, first, sess.AttemptID())
	assert.Equal(t, 1, sess.Engine().Position())
	assert.Equal(t, []int{1}, sess.Engine().Trail())
}

func TestPlayLinesEOF(t *testing.T) {
	sess := newLineSession(t)
	var out bytes.Buffer
	require.NoError(t, playLines(context.Background(), strings.NewReader("1\n"), &out, sess))
	assert.Equal(t, 1, sess.Engine().Position())
}

func TestTextBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("░", 10), textBar(0, 10))
	assert.Equal(t, strings.Repeat("█", 10), textBar(1, 10))
	assert.Equal(t, "████░░░░░░", textBar(0.4, 10))
	assert.Equal(t, strings.Repeat("█", 10), textBar(3, 10))
}
