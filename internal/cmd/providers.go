package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lettercraft/internal/config"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List configured model providers",
	Long: `List the model providers discovered from configuration and environment.
With --check, each provider's API is probed for connectivity.`,
	RunE: runProviders,
}

var providersCheck bool

func init() {
	providersCmd.Flags().BoolVar(&providersCheck, "check", false, "probe each provider's API")

	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	registry, err := cfg.Registry()
	if err != nil {
		return err
	}
	defer func() { _ = registry.CloseAll() }()

	names := registry.List()
	sort.Strings(names)

	for _, name := range names {
		client, err := registry.Get(name)
		if err != nil {
			return err
		}

		info := client.Info()
		status := "configured"
		if providersCheck {
			if err := client.Health(cmd.Context()); err != nil {
				status = fmt.Sprintf("unreachable: %v", err)
			} else {
				status = "ok"
			}
		}

		fmt.Printf("%-10s %-30s default=%s  [%s]\n", name, info.BaseURL, info.DefaultModel, status)
	}

	return nil
}
