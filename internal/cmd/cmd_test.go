package cmd

import (
	"testing"

	"github.com/felixgeelhaar/lettercraft/internal/letter"
)

func TestRootRegistersSubcommands(t *testing.T) {
	want := map[string]bool{
		"generate":     false,
		"instructions": false,
		"providers":    false,
		"version":      false,
	}

	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestGenerateFlagDefaults(t *testing.T) {
	deadline, err := generateCmd.Flags().GetInt("deadline")
	if err != nil {
		t.Fatalf("deadline flag: %v", err)
	}
	if deadline != 30 {
		t.Errorf("deadline default = %d, want 30", deadline)
	}

	temp, err := generateCmd.Flags().GetFloat64("temperature")
	if err != nil {
		t.Fatalf("temperature flag: %v", err)
	}
	if temp != -1 {
		t.Errorf("temperature default = %v, want -1 (meaning: use config)", temp)
	}
}

func TestFormDefaultsKeepPartialFlags(t *testing.T) {
	params := letter.RunParams{
		Model:       "gemini-2.0-flash",
		Temperature: 0.4,
		Request: letter.Request{
			PolicyNumber:         "P-111",
			ClaimNumber:          "C-222",
			ResponseDeadlineDays: 45,
		},
	}

	values := formDefaults(params)

	if values.Request.PolicyNumber != "P-111" {
		t.Errorf("policy flag discarded, got %q", values.Request.PolicyNumber)
	}
	if values.Request.ClaimNumber != "C-222" {
		t.Errorf("claim flag discarded, got %q", values.Request.ClaimNumber)
	}
	if values.Request.ResponseDeadlineDays != 45 {
		t.Errorf("deadline flag discarded, got %d", values.Request.ResponseDeadlineDays)
	}
	if values.Model != "gemini-2.0-flash" {
		t.Errorf("model not threaded, got %q", values.Model)
	}
	if values.Temperature != 0.4 {
		t.Errorf("temperature not threaded, got %v", values.Temperature)
	}

	// Fields the caller left empty keep the stock form defaults.
	if values.Request.CompanyName != "Cascade Assurance" {
		t.Errorf("missing flag should fall back to default, got %q", values.Request.CompanyName)
	}
}

func TestInstructionsLimitDefault(t *testing.T) {
	limit, err := instructionsCmd.Flags().GetInt("limit")
	if err != nil {
		t.Fatalf("limit flag: %v", err)
	}
	if limit != 6000 {
		t.Errorf("limit default = %d, want 6000", limit)
	}
}
