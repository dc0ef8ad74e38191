package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/roscourse/internal/quiz"
	"github.com/abhisek/roscourse/internal/ui/theme"
)

// MultiChoice renders a quiz evaluator: the question, its options with the
// reader's selection and, once submitted, the outcome and explanation.
type MultiChoice struct {
	Heading string
	Eval    *quiz.Evaluator
	Width   int
}

// NewMultiChoice creates a new multiple-choice view.
func NewMultiChoice(heading string, eval *quiz.Evaluator, width int) MultiChoice {
	return MultiChoice{Heading: heading, Eval: eval, Width: width}
}

// OptionKey returns the key label for the option at index i.
func OptionKey(i int) string {
	return string(rune('a' + i))
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	spec := m.Eval.Spec()
	wrap := lipgloss.NewStyle().Width(m.Width)

	var b strings.Builder
	if m.Heading != "" {
		b.WriteString(theme.SectionHeading.Render(m.Heading) + "\n")
	}
	b.WriteString(wrap.Inherit(theme.Body).Bold(true).Render(spec.Question) + "\n\n")

	selected, _ := m.Eval.Selected()
	answered := m.Eval.Answered()

	for i, opt := range spec.Options {
		marker := "( )"
		if opt.ID == selected {
			marker = "(•)"
		}
		line := fmt.Sprintf("  %s %s) %s", marker, OptionKey(i), opt.Text)

		var style lipgloss.Style
		switch {
		case answered && opt.Correct:
			style = theme.Correct
			line += "  ✓"
		case answered && opt.ID == selected:
			style = theme.Incorrect
			line += "  ✗"
		case answered:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case opt.ID == selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line) + "\n")
	}

	if answered {
		b.WriteString("\n")
		switch m.Eval.Outcome() {
		case quiz.Correct:
			b.WriteString(theme.Correct.Render(quiz.Correct.String()))
		default:
			b.WriteString(theme.Incorrect.Render(quiz.Incorrect.String()))
		}
		if spec.Explanation != "" {
			b.WriteString("\n" + wrap.Inherit(theme.Hint).Render(spec.Explanation))
		}
		b.WriteString("\n")
	}

	return b.String()
}
