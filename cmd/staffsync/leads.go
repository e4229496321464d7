package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/staffsync/internal/observability"
	"github.com/jonathan/staffsync/internal/store"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Print the seeded employer lead pipeline",
	Long:  `Print the demo employer leads with their pipeline stage and payment state. Flags leads whose declared payment status disagrees with the recorded amounts.`,
	RunE:  runLeads,
}

func init() {
	rootCmd.AddCommand(leadsCmd)
}

func runLeads(_ *cobra.Command, _ []string) error {
	observability.NewPrinter(os.Stdout).PrintLeads(store.NewLeadStore(store.SeedLeads()).List())
	return nil
}
