package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/roscourse/internal/course"
	"github.com/abhisek/roscourse/internal/ui/components"
	"github.com/abhisek/roscourse/internal/ui/theme"
)

// renderTitle returns the course title and tagline block.
func renderTitle(title, tagline string, cw int) string {
	block := theme.Title.Render(title)
	if tagline != "" {
		block += "\n" + theme.Subtitle.Width(cw).Render(tagline)
	}
	return block
}

// renderFeatures lists the course highlights in a single card.
func renderFeatures(features []course.Feature, cw int) string {
	if len(features) == 0 {
		return ""
	}
	lines := make([]string, len(features))
	for i, f := range features {
		lines[i] = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("• "+f.Title) +
			theme.Subtitle.Render("  "+f.Description)
	}
	return components.Card(strings.Join(lines, "\n"), cw, false)
}

func renderNotice(notice string, cw int) string {
	return theme.Notice.Width(cw).Render("! " + notice)
}

// renderChapterCard renders one chapter of the listing.
func renderChapterCard(ch course.Chapter, selected bool, cw int, compact bool) string {
	heading := fmt.Sprintf("Chapter %d · %s", ch.ID, ch.Title)
	if selected {
		heading = theme.Selected.Render("▸ " + heading)
	} else {
		heading = theme.Body.Bold(true).Render("  " + heading)
	}

	meta := theme.Badge(ch.Difficulty.DisplayName(), theme.DifficultyColor(ch.Difficulty)) +
		theme.Subtitle.Render(fmt.Sprintf("  %s · %s · %s",
			ch.Duration, plural(len(ch.Sections), "section"), plural(ch.QuizCount(), "quiz")))

	lines := []string{heading}
	if !compact && ch.Description != "" {
		lines = append(lines, theme.Subtitle.Width(cw-4).Render(ch.Description))
	}
	lines = append(lines, meta)
	if !compact && len(ch.Topics) > 0 {
		lines = append(lines, theme.Hint.Render(strings.Join(ch.Topics, " · ")))
	}

	return components.Card(strings.Join(lines, "\n"), cw, selected)
}

// visibleCards joins the cards from offset that fit within height lines.
func visibleCards(cards []string, offset, height int) string {
	var out []string
	used := 0
	for _, c := range cards[offset:] {
		h := lipgloss.Height(c)
		if used+h > height && len(out) > 0 {
			break
		}
		out = append(out, c)
		used += h
	}
	return strings.Join(out, "\n")
}

func cardsHeight(cards []string) int {
	total := 0
	for _, c := range cards {
		total += lipgloss.Height(c)
	}
	return total
}

func plural(n int, noun string) string {
	switch {
	case n == 1:
		return fmt.Sprintf("1 %s", noun)
	case strings.HasSuffix(noun, "z"):
		return fmt.Sprintf("%d %szes", n, noun)
	default:
		return fmt.Sprintf("%d %ss", n, noun)
	}
}
