package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/roscourse/internal/config"
	"github.com/abhisek/roscourse/internal/course"
)

var rootCmd = &cobra.Command{
	Use:   "roscourse",
	Short: "Interactive ROS 2 course in the terminal",
	Long:  "roscourse: a five-chapter ROS 2 course with code samples and quizzes, read in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, 0)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("content", "", "Path to a course document (overrides ROSCOURSE_CONTENT env var)")
	rootCmd.PersistentFlags().String("log", "", "Path to a debug log file (overrides ROSCOURSE_LOG env var)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads configuration from the environment and applies the
// --content and --log flags on top (flag > env > default).
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		cfg.ContentPath = p
	}
	if p, _ := cmd.Flags().GetString("log"); p != "" {
		cfg.LogPath = p
	}
	return cfg, nil
}

// loadStore returns the configured course, falling back to the embedded one.
func loadStore(cfg *config.Config) (*course.Store, error) {
	if cfg.ContentPath == "" {
		return course.Default(), nil
	}
	st, err := course.Load(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return st, nil
}
