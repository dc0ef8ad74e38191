package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/roscourse/internal/course"
	"github.com/abhisek/roscourse/internal/highlight"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "Browse the course chapters",
}

var chaptersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all chapters",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		st, err := loadStore(cfg)
		if err != nil {
			return err
		}
		printChapterTable(cmd.OutOrStdout(), st)
		return nil
	},
}

var chaptersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a chapter with its code samples and quizzes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid chapter id %q", args[0])
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		st, err := loadStore(cfg)
		if err != nil {
			return err
		}

		ch, err := st.Chapter(id)
		if errors.Is(err, course.ErrChapterNotFound) {
			return fmt.Errorf("%w (available: %s)", err, joinIDs(st.IDs()))
		}
		if err != nil {
			return err
		}

		var hl *highlight.Highlighter
		if plain, _ := cmd.Flags().GetBool("plain"); !plain {
			hl = highlight.New(cfg.CodeStyle)
		}
		printChapter(cmd.OutOrStdout(), ch, hl)
		return nil
	},
}

func init() {
	chaptersShowCmd.Flags().Bool("plain", false, "Print code samples without colours")

	chaptersCmd.AddCommand(chaptersListCmd)
	chaptersCmd.AddCommand(chaptersShowCmd)
}

func printChapterTable(w io.Writer, st *course.Store) {
	fmt.Fprintf(w, "%3s  %-40s  %-12s  %-10s  %8s  %7s\n",
		"ID", "Title", "Difficulty", "Duration", "Sections", "Quizzes")
	fmt.Fprintln(w, strings.Repeat("─", 90))

	for _, ch := range st.Chapters() {
		title := ch.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(w, "%3d  %-40s  %-12s  %-10s  %8d  %7d\n",
			ch.ID, title, ch.Difficulty.DisplayName(), ch.Duration,
			len(ch.Sections), ch.QuizCount())
	}

	fmt.Fprintf(w, "\n%d chapters\n", st.Len())
}

// printChapter writes ch as text without revealing quiz answers. A nil
// highlighter prints code samples verbatim.
func printChapter(w io.Writer, ch course.Chapter, hl *highlight.Highlighter) {
	fmt.Fprintf(w, "Chapter %d: %s\n", ch.ID, ch.Title)
	fmt.Fprintf(w, "%s · %s · %d sections\n\n", ch.Difficulty.DisplayName(), ch.Duration, len(ch.Sections))
	fmt.Fprintln(w, strings.TrimSpace(ch.Introduction))

	for i, sec := range ch.Sections {
		fmt.Fprintf(w, "\n── %d. %s ──\n\n", i+1, sec.Title)
		fmt.Fprintln(w, strings.TrimSpace(sec.Body))

		if code := sec.Code; code != nil {
			fmt.Fprintln(w)
			if code.Title != "" {
				fmt.Fprintf(w, "[%s] %s\n", code.Language, code.Title)
			}
			if hl != nil {
				fmt.Fprintln(w, hl.Render(code.Source, code.Language))
			} else {
				fmt.Fprintln(w, strings.TrimRight(code.Source, "\n"))
			}
		}

		if q := sec.Quiz; q != nil {
			fmt.Fprintf(w, "\nQuiz: %s\n", q.Question)
			for _, o := range q.Options {
				fmt.Fprintf(w, "  %s) %s\n", o.ID, o.Text)
			}
		}
	}
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
