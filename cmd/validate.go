package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/roscourse/internal/course"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a course document for integrity problems",
	Long: `Run the course document through schema, format and integrity checks.

Without --content (or ROSCOURSE_CONTENT) the embedded course is checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		var st *course.Store
		source := cfg.ContentPath
		if source == "" {
			source = "embedded course"
			st = course.Default()
		} else if st, err = course.Load(source); err != nil {
			return err
		}

		var sections, quizzes, samples int
		for _, ch := range st.Chapters() {
			sections += len(ch.Sections)
			quizzes += ch.QuizCount()
			for _, sec := range ch.Sections {
				if sec.Code != nil {
					samples++
				}
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", source)
		fmt.Fprintf(cmd.OutOrStdout(), "  %d chapters, %d sections, %d code samples, %d quizzes\n",
			st.Len(), sections, samples, quizzes)
		return nil
	},
}
