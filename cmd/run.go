package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/roscourse/internal/app"
	"github.com/abhisek/roscourse/internal/clipboard"
	"github.com/abhisek/roscourse/internal/highlight"
	"github.com/abhisek/roscourse/internal/screens/chapter"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the course (optionally at a chapter)",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt("chapter")
		return runApp(cmd, id)
	},
}

func init() {
	runCmd.Flags().Int("chapter", 0, "Chapter id to open on start")
}

// runApp loads configuration and content, builds dependencies, and launches
// the TUI.
func runApp(cmd *cobra.Command, initialChapter int) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	st, err := loadStore(cfg)
	if err != nil {
		return err
	}
	logger.Info("course loaded", "title", st.Title(), "chapters", st.Len(), "content", cfg.ContentPath)

	opts := app.Options{
		Deps: chapter.Deps{
			Store:        st,
			Highlighter:  highlight.New(cfg.CodeStyle),
			Clipboard:    clipboard.System(),
			Logger:       logger,
			AdvanceDelay: cfg.AdvanceDelay,
		},
		InitialChapter: initialChapter,
	}

	if err := app.Run(opts); err != nil {
		logger.Error("program exited", "error", err)
		return fmt.Errorf("roscourse: %w", err)
	}
	return nil
}
