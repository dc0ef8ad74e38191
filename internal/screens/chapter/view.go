package chapter

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/roscourse/internal/course"
	"github.com/abhisek/roscourse/internal/ui/components"
	"github.com/abhisek/roscourse/internal/ui/layout"
	"github.com/abhisek/roscourse/internal/ui/theme"
)

func (s *ChapterScreen) View(width, height int) string {
	cw := layout.ReadingWidth(width)

	footer := s.renderActions()
	if s.status != "" {
		footer = s.renderStatus() + "\n" + footer
	}
	bodyHeight := max(height-lipgloss.Height(footer)-1, 1)

	var content string
	activeLine := 0
	if s.showTOC {
		content = s.renderHeader(cw) + "\n\n" +
			theme.SectionHeading.Render("Contents") + "\n\n" + s.toc.View()
	} else {
		content, activeLine = s.renderBody(cw)
	}

	s.vp.SetWidth(width)
	s.vp.SetHeight(bodyHeight)
	s.vp.SetContent(content)
	if s.scrollToActive {
		s.vp.SetYOffset(activeLine)
		s.scrollToActive = false
	}

	return s.vp.View() + "\n" + footer
}

// renderBody renders the chapter header followed by the stepper. It also
// returns the line on which the active section starts.
func (s *ChapterScreen) renderBody(cw int) (string, int) {
	var parts []string
	parts = append(parts, s.renderHeader(cw))

	if pct := s.tracker.CompletionPercent(); pct > 0 {
		parts = append(parts, components.NewProgressBar("Progress", pct, true, cw).View())
	}
	if s.tracker.IsChapterComplete() {
		parts = append(parts, s.renderCompletion(cw))
	}

	top := strings.Join(parts, "\n\n") + "\n\n"
	activeLine := 0

	var steps []string
	for i, sec := range s.chapter.Sections {
		if i == s.tracker.Active() {
			// Sections before the active one render as single lines.
			activeLine = strings.Count(top, "\n") + i
			steps = append(steps, s.renderActiveSection(i, sec, cw))
			continue
		}
		steps = append(steps, s.renderStepTitle(i, sec))
	}

	return top + strings.Join(steps, "\n"), activeLine
}

func (s *ChapterScreen) renderHeader(cw int) string {
	ch := s.chapter
	title := theme.Title.Render(fmt.Sprintf("Chapter %d · %s", ch.ID, ch.Title))

	badges := theme.Badge(ch.Difficulty.DisplayName(), theme.DifficultyColor(ch.Difficulty)) +
		theme.Subtitle.Render(fmt.Sprintf("  %s · %d sections", ch.Duration, len(ch.Sections)))

	lines := []string{title, badges}
	if ch.Introduction != "" {
		lines = append(lines, "", theme.Body.Width(cw).Render(ch.Introduction))
	}
	return strings.Join(lines, "\n")
}

func (s *ChapterScreen) renderCompletion(cw int) string {
	msg := "Chapter complete! You have read every section."
	if next, ok := s.deps.Store.Next(s.chapter.ID); ok {
		msg += fmt.Sprintf("\nPress ] to continue with Chapter %d: %s.", next.ID, next.Title)
	}
	return theme.Banner.Width(cw).Render(msg)
}

// stepMarker returns the stepper symbol for section i.
func (s *ChapterScreen) stepMarker(i int) string {
	switch {
	case s.tracker.IsCompleted(i):
		return theme.Completed.Render("✓")
	case i == s.tracker.Active():
		return theme.Selected.Render("●")
	default:
		return theme.Subtitle.Render("○")
	}
}

func (s *ChapterScreen) renderStepTitle(i int, sec course.Section) string {
	label := fmt.Sprintf("%d. %s", i+1, sec.Title)
	style := theme.Unselected
	if s.tracker.IsCompleted(i) {
		style = theme.Completed
	}
	return s.stepMarker(i) + " " + style.Render(label)
}

func (s *ChapterScreen) renderActiveSection(i int, sec course.Section, cw int) string {
	title := s.stepMarker(i) + " " + theme.Selected.Render(fmt.Sprintf("%d. %s", i+1, sec.Title))
	inner := cw - 2

	var blocks []string
	if sec.Body != "" {
		blocks = append(blocks, theme.Body.Width(inner).Render(sec.Body))
	}
	if sec.Code != nil {
		blocks = append(blocks, s.renderCode(i, *sec.Code, inner))
	}
	if e, ok := s.quizzes[i]; ok {
		heading := fmt.Sprintf("Quiz · Section %d", i+1)
		blocks = append(blocks, components.NewMultiChoice(heading, e, inner).View())
	}

	body := lipgloss.NewStyle().PaddingLeft(2).Render(strings.Join(blocks, "\n\n"))
	return title + "\n\n" + body + "\n"
}

func (s *ChapterScreen) renderCode(i int, code course.CodeSample, width int) string {
	var head []string
	if code.Title != "" {
		head = append(head, theme.SectionHeading.Render(code.Title)+
			theme.Subtitle.Render("  ("+code.Language+")"))
	}
	if code.Description != "" {
		head = append(head, theme.Hint.Width(width).Render(code.Description))
	}

	rendered, ok := s.codeCache[i]
	if !ok {
		rendered = s.deps.Highlighter.Render(code.Source, code.Language)
		s.codeCache[i] = rendered
	}

	block := theme.CodeBlock.Render(rendered)
	if len(head) == 0 {
		return block
	}
	return strings.Join(head, "\n") + "\n" + block
}

func (s *ChapterScreen) renderStatus() string {
	if s.statusErr {
		return theme.Incorrect.Render(s.status)
	}
	return theme.Correct.Render(s.status)
}

// renderActions renders the button row under the scrolling body.
func (s *ChapterScreen) renderActions() string {
	buttons := []components.Button{
		components.NewButton("←", "Previous", s.tracker.CanRetreat()),
		components.NewButton("Enter", s.completeLabel(), true),
	}
	if e, ok := s.activeQuiz(); ok {
		if e.Answered() {
			buttons = append(buttons, components.NewButton("r", "Retry quiz", true))
		} else {
			buttons = append(buttons, components.NewButton("s", "Submit", e.CanSubmit()))
		}
	}
	if s.chapter.Sections[s.tracker.Active()].Code != nil {
		buttons = append(buttons, components.NewButton("y", "Copy code", s.deps.Clipboard != nil))
	}
	return "  " + components.ButtonRow(buttons...)
}
