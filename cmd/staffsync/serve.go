package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/staffsync/internal/assistant"
	"github.com/jonathan/staffsync/internal/config"
	"github.com/jonathan/staffsync/internal/extraction"
	"github.com/jonathan/staffsync/internal/intake"
	"github.com/jonathan/staffsync/internal/llm"
	"github.com/jonathan/staffsync/internal/server"
	"github.com/jonathan/staffsync/internal/session"
	"github.com/jonathan/staffsync/internal/store"
	"github.com/jonathan/staffsync/internal/wizard"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for intake sessions, candidates, leads, and documentation wizards.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

// loadConfig merges the optional config file with defaults; CLI flags win.
func loadConfig() (config.Config, error) {
	cfg := config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Config{APIKey: os.Getenv("GEMINI_API_KEY")})
	if servePort > 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if cfg.APIKey == "" {
		return config.Config{}, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	return cfg, nil
}

// llmConfig applies per-tier model overrides from the config file.
func llmConfig(cfg config.Config) *llm.Config {
	out := llm.DefaultConfig()
	if cfg.ModelLite != "" {
		out = out.WithModel(llm.TierLite, cfg.ModelLite)
	}
	if cfg.ModelStandard != "" {
		out = out.WithModel(llm.TierStandard, cfg.ModelStandard)
	}
	if cfg.ModelAdvanced != "" {
		out = out.WithModel(llm.TierAdvanced, cfg.ModelAdvanced)
	}
	return out
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := llm.NewClient(cmd.Context(), llmConfig(cfg), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	profiles := store.NewProfileStore(store.SeedProfiles())
	leads := store.NewLeadStore(store.SeedLeads())

	srv := server.New(server.Config{Port: cfg.Port}, server.Deps{
		Profiles:  profiles,
		Leads:     leads,
		Sessions:  session.NewManager(profiles, intake.New(client), assistant.New(client)),
		Wizards:   wizard.NewManager(profiles),
		Extractor: extraction.New(client),
	})

	return srv.Start()
}
