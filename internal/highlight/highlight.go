// Package highlight renders code samples with ANSI colours for the terminal.
package highlight

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

var gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

// Highlighter turns source text into coloured, line-numbered output.
type Highlighter struct {
	style       *chroma.Style
	formatter   chroma.Formatter
	LineNumbers bool
}

// New returns a highlighter using the named chroma style. Unknown names fall
// back to DefaultStyle.
func New(style string) *Highlighter {
	s, ok := styles.Registry[strings.ToLower(style)]
	if !ok {
		s = styles.Get(DefaultStyle)
	}
	return &Highlighter{
		style:       s,
		formatter:   formatters.TTY256,
		LineNumbers: true,
	}
}

// StyleName returns the name of the active style.
func (h *Highlighter) StyleName() string { return h.style.Name }

// Render highlights src as lang. Unknown languages are rendered as plain text;
// if highlighting fails the raw source is returned.
func (h *Highlighter) Render(src, lang string) string {
	src = strings.TrimRight(src, "\n")

	lines, err := h.highlightLines(src, lang)
	if err != nil {
		lines = strings.Split(src, "\n")
	}
	if !h.LineNumbers {
		return strings.Join(lines, "\n")
	}

	width := len(fmt.Sprint(len(lines)))
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(gutterStyle.Render(fmt.Sprintf("%*d │ ", width, i+1)))
		b.WriteString(line)
	}
	return b.String()
}

// highlightLines tokenises src and formats each source line on its own so
// escape sequences never span a line break.
func (h *Highlighter) highlightLines(src, lang string) ([]string, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, src)
	if err != nil {
		return nil, fmt.Errorf("tokenise %s: %w", lang, err)
	}

	var out []string
	for _, tokens := range chroma.SplitTokensIntoLines(it.Tokens()) {
		if n := len(tokens); n > 0 {
			tokens[n-1].Value = strings.TrimSuffix(tokens[n-1].Value, "\n")
		}
		var b strings.Builder
		if err := h.formatter.Format(&b, h.style, chroma.Literator(tokens...)); err != nil {
			return nil, fmt.Errorf("format %s: %w", lang, err)
		}
		out = append(out, strings.TrimRight(b.String(), "\n"))
	}
	return out, nil
}
