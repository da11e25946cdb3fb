package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lettercraft/internal/config"
	"github.com/felixgeelhaar/lettercraft/internal/letter"
	"github.com/felixgeelhaar/lettercraft/internal/tui"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an insurance letter",
	Long: `Generate an insurance letter through the three-stage pipeline.

With a terminal attached and no request flags, an interactive form collects
the letter details. With flags (or in CI), the request is built from flags
alone. The final letter is printed to stdout; logs go to stderr.`,
	Example: `  # Interactive form
  lettercraft generate

  # Fully flag-driven
  lettercraft generate --type "Denial Letter" --company "Cascade Assurance" \
    --insured "Ananya Brown" --policy P-4903497 --claim C-8627060 \
    --phone 1-800-555-1234 --deadline 30 --out ./letters`,
	RunE: runGenerate,
}

var (
	genType         string
	genCompany      string
	genInsured      string
	genPolicy       string
	genClaim        string
	genPhone        string
	genDeadline     int
	genNotes        string
	genModel        string
	genTemperature  float64
	genInstructions string
	genOut          string
	genNoInput      bool
)

func init() {
	generateCmd.Flags().StringVar(&genType, "type", "", "letter type (Coverage Decision, Denial Letter, Request for Additional Information)")
	generateCmd.Flags().StringVar(&genCompany, "company", "", "insurance company name")
	generateCmd.Flags().StringVar(&genInsured, "insured", "", "insured person's name")
	generateCmd.Flags().StringVar(&genPolicy, "policy", "", "policy number")
	generateCmd.Flags().StringVar(&genClaim, "claim", "", "claim number")
	generateCmd.Flags().StringVar(&genPhone, "phone", "", "claims department phone (default N/A)")
	generateCmd.Flags().IntVar(&genDeadline, "deadline", 30, "response deadline in days (1-90)")
	generateCmd.Flags().StringVar(&genNotes, "notes", "", "additional notes for the letter (default None)")
	generateCmd.Flags().StringVar(&genModel, "model", "", "model identifier (overrides config)")
	generateCmd.Flags().Float64Var(&genTemperature, "temperature", -1, "sampling temperature 0.0-2.0 (overrides config)")
	generateCmd.Flags().StringVar(&genInstructions, "instructions", "", "path to the canonical instruction file")
	generateCmd.Flags().StringVar(&genOut, "out", "", "directory to write the letter artifact into")
	generateCmd.Flags().BoolVar(&genNoInput, "no-input", false, "never show the interactive form")

	rootCmd.AddCommand(generateCmd)
}

// formDefaults seeds the interactive form: the stock defaults, overlaid
// with whatever request fields the caller already supplied via flags.
func formDefaults(params letter.RunParams) tui.FormValues {
	values := tui.DefaultFormValues()
	values.Model = params.Model
	values.Temperature = params.Temperature
	values.InstructionsPath = params.InstructionsPath

	req := params.Request
	if req.LetterType != "" {
		values.Request.LetterType = req.LetterType
	}
	if req.CompanyName != "" {
		values.Request.CompanyName = req.CompanyName
	}
	if req.InsuredName != "" {
		values.Request.InsuredName = req.InsuredName
	}
	if req.PolicyNumber != "" {
		values.Request.PolicyNumber = req.PolicyNumber
	}
	if req.ClaimNumber != "" {
		values.Request.ClaimNumber = req.ClaimNumber
	}
	if req.ContactPhone != "" {
		values.Request.ContactPhone = req.ContactPhone
	}
	if req.ResponseDeadlineDays > 0 {
		values.Request.ResponseDeadlineDays = req.ResponseDeadlineDays
	}
	if req.CustomNotes != "" {
		values.Request.CustomNotes = req.CustomNotes
	}

	return values
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	params := letter.RunParams{
		InstructionsPath: cfg.InstructionsPath,
		Model:            cfg.Model,
		Temperature:      cfg.Temperature,
		Request: letter.Request{
			LetterType:           genType,
			CompanyName:          genCompany,
			InsuredName:          genInsured,
			PolicyNumber:         genPolicy,
			ClaimNumber:          genClaim,
			ContactPhone:         genPhone,
			ResponseDeadlineDays: genDeadline,
			CustomNotes:          genNotes,
		},
	}
	if genModel != "" {
		params.Model = genModel
	}
	if genTemperature >= 0 {
		params.Temperature = genTemperature
	}
	if genInstructions != "" {
		params.InstructionsPath = genInstructions
	}

	interactive := !genNoInput && tui.ShouldPrompt()

	// No letter-type/company flags plus a terminal means the form
	// collects the request; any flags that were passed pre-fill it.
	if interactive && genType == "" && genCompany == "" {
		values, err := tui.RunForm(formDefaults(params))
		if err != nil {
			return err
		}

		params.Request = values.Request
		params.Model = values.Model
		params.Temperature = values.Temperature
		params.InstructionsPath = values.InstructionsPath
	}

	registry, err := cfg.Registry()
	if err != nil {
		return err
	}
	defer func() { _ = registry.CloseAll() }()

	client, err := registry.ForModel(params.Model)
	if err != nil {
		return err
	}

	runner := letter.NewRunner(letter.NewProviderInvoker(client), logger)

	var result *letter.RunResult
	if interactive {
		result, err = tui.RunWithProgress(cmd.Context(), runner, params)
	} else {
		result, err = runner.Run(cmd.Context(), params)
	}
	if err != nil {
		return err
	}

	fmt.Println(result.Final)

	if genOut != "" {
		path, err := letter.WriteArtifact(genOut, params.Request.Normalize(), result.Final)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Letter written to %s (blake3 %s)\n", path, letter.Checksum(result.Final))
	}

	return nil
}
