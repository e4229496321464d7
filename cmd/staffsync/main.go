// Package main provides the entry point for the StaffSync HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "staffsync",
	Short: "StaffSync staffing agency server",
	Long:  "StaffSync runs the staffing agency backend: conversational employer intake, resume extraction into the candidate database, employer lead tracking, and the candidate documentation flow, exposed via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
