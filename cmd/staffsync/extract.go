package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/staffsync/internal/extraction"
	"github.com/jonathan/staffsync/internal/llm"
	"github.com/jonathan/staffsync/internal/observability"
)

var extractVerbose bool

var extractCmd = &cobra.Command{
	Use:   "extract <resume-file>",
	Short: "Extract a candidate profile from a resume text file",
	Long:  `Run the resume extraction once against a local text file and print the resulting candidate profile as JSON. Useful for smoke-testing prompts and schema changes without the server.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractVerbose, "verbose", false, "Print a formatted summary in addition to JSON")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	client, err := llm.NewClient(cmd.Context(), llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	profile, err := extraction.New(client).Extract(cmd.Context(), string(data), args[0])
	if err != nil {
		return err
	}

	if extractVerbose {
		observability.NewPrinter(os.Stdout).PrintProfile(profile)
	}

	out, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
