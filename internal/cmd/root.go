package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lettercraft/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "lettercraft",
	Short: "AI-assisted insurance letter generator",
	Long: `lettercraft generates professional insurance letters through a three-stage
AI pipeline: a generator drafts the letter from a canonical instruction set,
a formatter cleans up its structure, and a compliance reviewer ensures the
required regulatory language is present.`,
	SilenceUsage: true,
}

var (
	flagConfig  string
	flagVerbose bool
	flagQuiet   bool
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a cancellable context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default is ./lettercraft.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "only log errors")
}

// newLogger builds the logger the global flags ask for.
func newLogger() *log.Logger {
	switch {
	case flagVerbose:
		return log.Development()
	case flagQuiet:
		return log.Quiet()
	default:
		return log.Default()
	}
}
