package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lettercraft/internal/config"
	"github.com/felixgeelhaar/lettercraft/internal/letter"
)

var instructionsCmd = &cobra.Command{
	Use:   "instructions",
	Short: "Preview the canonical instruction file",
	Long: `Print the canonical instruction file every generated letter must follow.
Long files are truncated for display; use --limit 0 to print everything.`,
	RunE: runInstructions,
}

var (
	instructionsPath  string
	instructionsLimit int
)

func init() {
	instructionsCmd.Flags().StringVar(&instructionsPath, "path", "", "path to the canonical instruction file")
	instructionsCmd.Flags().IntVar(&instructionsLimit, "limit", 6000, "maximum bytes to print (0 = unlimited)")

	rootCmd.AddCommand(instructionsCmd)
}

func runInstructions(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	path := cfg.InstructionsPath
	if instructionsPath != "" {
		path = instructionsPath
	}

	preview, err := letter.PreviewInstructions(path, instructionsLimit)
	if err != nil {
		return err
	}

	fmt.Println(preview)
	return nil
}
