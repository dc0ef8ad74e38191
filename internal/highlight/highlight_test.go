package highlight

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_PreservesSource(t *testing.T) {
	h := New(DefaultStyle)
	h.LineNumbers = false

	src := "import rclpy\nrclpy.init()\n"
	out := h.Render(src, "python")

	assert.Equal(t, "import rclpy\nrclpy.init()", ansi.Strip(out))
}

func TestRender_Colours(t *testing.T) {
	out := New(DefaultStyle).Render("echo hi", "bash")
	assert.NotEqual(t, ansi.Strip(out), out, "expected escape sequences in output")
}

func TestRender_LineNumbers(t *testing.T) {
	src := strings.Repeat("x\n", 10)
	lines := strings.Split(ansi.Strip(New(DefaultStyle).Render(src, "text")), "\n")

	require.Len(t, lines, 10)
	assert.Equal(t, " 1 │ x", lines[0])
	assert.Equal(t, "10 │ x", lines[9])
}

func TestRender_UnknownLanguage(t *testing.T) {
	h := New(DefaultStyle)
	h.LineNumbers = false

	out := h.Render("msg.data = 1", "no-such-language")
	assert.Equal(t, "msg.data = 1", ansi.Strip(out))
}

func TestNew_UnknownStyleFallsBack(t *testing.T) {
	assert.Equal(t, DefaultStyle, New("no-such-style").StyleName())
	assert.Equal(t, "dracula", New("Dracula").StyleName())
}
